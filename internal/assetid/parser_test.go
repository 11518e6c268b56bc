// internal/assetid/parser_test.go
package assetid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		rawID        string
		expectErr    bool
		expectedAddr *Address
	}{
		{
			name:         "bare entry",
			rawID:        "Diamond",
			expectedAddr: &Address{Path: []string{"Diamond"}},
		},
		{
			name:         "nested entry",
			rawID:        "MoviestarplanetComponents.Login.CityBackground",
			expectedAddr: &Address{Path: []string{"MoviestarplanetComponents", "Login", "CityBackground"}},
		},
		{
			name:         "underscores and digits",
			rawID:        "_v2.Icon_32",
			expectedAddr: &Address{Path: []string{"_v2", "Icon_32"}},
		},
		{
			name:      "error - empty string",
			rawID:     "",
			expectErr: true,
		},
		{
			name:      "error - empty segment",
			rawID:     "Login..CityBackground",
			expectErr: true,
		},
		{
			name:      "error - trailing dot",
			rawID:     "Login.",
			expectErr: true,
		},
		{
			name:      "error - leading digit",
			rawID:     "Login.3d",
			expectErr: true,
		},
		{
			name:      "error - hyphen",
			rawID:     "moviestarplanet-swf.SchoolYard",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, err := Parse(tc.rawID)
			if tc.expectErr {
				require.Error(t, err)
				assert.Nil(t, addr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedAddr, addr)
		})
	}
}

func TestValidateSegment(t *testing.T) {
	assert.NoError(t, ValidateSegment("SchoolYard"))
	assert.Error(t, ValidateSegment(""))
	assert.Error(t, ValidateSegment("school yard"))
	assert.Error(t, ValidateSegment("a.b"))
}
