// Package assets declares the built-in asset catalog and exposes one accessor
// per entry, e.g. assets.SchoolYard(). Each accessor binds its identifier
// statically, so a typo fails at compile time rather than at lookup.
package assets

import (
	"sync"

	"github.com/specialistvlad/assetpath/internal/catalog"
	"github.com/specialistvlad/assetpath/internal/resolver"
)

// BaseURL is the prefix of every built-in asset.
const BaseURL = "https://raw.githubusercontent.com/cydolo/assets/main/"

// Entry identifiers of the built-in catalog.
const (
	IDDiamond         = "Diamond"
	IDSchoolYard      = "SchoolYard"
	IDTheLobby        = "TheLobby"
	IDVideoTop        = "VideoTop"
	IDCityBackground  = "CityBackground"
	IDCreateUserLight = "CreateUserLight"
	IDBackground      = "Background"
)

// Declare registers the built-in groups and entries on b.
func Declare(b *catalog.Builder) {
	b.Group("Moviestarplanet").
		Entry(IDDiamond, "diamond.png")

	b.Group("MoviestarplanetSwf").
		Entry(IDSchoolYard, "school_yard.swf").
		Entry(IDTheLobby, "the_lobby.swf").
		Entry(IDVideoTop, "video_top.swf")

	components := b.Group("MoviestarplanetComponents")
	components.Group("Login").
		Entry(IDCityBackground, "citybackground.svg").
		Entry(IDCreateUserLight, "createuserlight.svg")
	components.Group("Preloader").
		Entry(IDBackground, "background.png")
}

// Tree builds a fresh tree holding the built-in catalog.
func Tree() (*catalog.Tree, error) {
	b := catalog.NewBuilder()
	Declare(b)
	return b.Build()
}

var (
	defaultOnce     sync.Once
	defaultResolver *resolver.Resolver
)

// Default returns the process-wide resolver over the built-in catalog.
func Default() *resolver.Resolver {
	defaultOnce.Do(func() {
		tree, err := Tree()
		if err != nil {
			panic(err)
		}
		defaultResolver = resolver.New(tree, BaseURL)
	})
	return defaultResolver
}
