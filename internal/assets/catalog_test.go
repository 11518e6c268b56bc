package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessors(t *testing.T) {
	testCases := []struct {
		name     string
		fn       func() string
		expected string
	}{
		{"Diamond", Diamond, BaseURL + "moviestarplanet/diamond.png"},
		{"SchoolYard", SchoolYard, BaseURL + "moviestarplanet-swf/school_yard.swf"},
		{"TheLobby", TheLobby, BaseURL + "moviestarplanet-swf/the_lobby.swf"},
		{"VideoTop", VideoTop, BaseURL + "moviestarplanet-swf/video_top.swf"},
		{"CityBackground", CityBackground, BaseURL + "moviestarplanet-components/login/citybackground.svg"},
		{"CreateUserLight", CreateUserLight, BaseURL + "moviestarplanet-components/login/createuserlight.svg"},
		{"Background", Background, BaseURL + "moviestarplanet-components/preloader/background.png"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.fn())
		})
	}
}

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, Default(), Default())

	SchoolYard()
	_, ok := Default().Cached(IDSchoolYard)
	assert.True(t, ok)
}

func TestTree_DeclaresEveryAccessor(t *testing.T) {
	tree, err := Tree()
	require.NoError(t, err)
	assert.Equal(t, 7, tree.Len())

	for _, id := range []string{IDDiamond, IDSchoolYard, IDTheLobby, IDVideoTop, IDCityBackground, IDCreateUserLight, IDBackground} {
		_, err := tree.Lookup(id)
		assert.NoError(t, err, id)
	}
}
