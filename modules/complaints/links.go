package complaints

import "github.com/civisafe/civisafe/pkg/types"

var PoliceComplaintsLink = types.NavigationItem{
	Name: "Complaints",
	Href: "/police/complaints",
}

var CitizenComplaintsLink = types.NavigationItem{
	Name: "My Complaints",
	Href: "/citizen/complaints",
}

var NavItems = []types.NavigationItem{
	PoliceComplaintsLink,
	CitizenComplaintsLink,
}
