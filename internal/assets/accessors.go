package assets

// Diamond is Moviestarplanet.Diamond.
func Diamond() string { return Default().MustResolve(IDDiamond) }

// SchoolYard is MoviestarplanetSwf.SchoolYard.
func SchoolYard() string { return Default().MustResolve(IDSchoolYard) }

// TheLobby is MoviestarplanetSwf.TheLobby.
func TheLobby() string { return Default().MustResolve(IDTheLobby) }

// VideoTop is MoviestarplanetSwf.VideoTop.
func VideoTop() string { return Default().MustResolve(IDVideoTop) }

// CityBackground is MoviestarplanetComponents.Login.CityBackground.
func CityBackground() string { return Default().MustResolve(IDCityBackground) }

// CreateUserLight is MoviestarplanetComponents.Login.CreateUserLight.
func CreateUserLight() string { return Default().MustResolve(IDCreateUserLight) }

// Background is MoviestarplanetComponents.Preloader.Background.
func Background() string { return Default().MustResolve(IDBackground) }
