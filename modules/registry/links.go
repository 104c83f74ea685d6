package registry

import "github.com/civisafe/civisafe/pkg/types"

var RegistryLink = types.NavigationItem{
	Name: "Registry",
	Href: "/police/registry",
	Children: []types.NavigationItem{
		{Name: "Missing Persons", Href: "/police/registry/missing"},
		{Name: "Criminals", Href: "/police/registry/criminals"},
	},
}

var AreaWatchLink = types.NavigationItem{
	Name: "Area Watch",
	Href: "/citizen/registry",
}

var NavItems = []types.NavigationItem{
	RegistryLink,
	AreaWatchLink,
}
