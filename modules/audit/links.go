package audit

import "github.com/civisafe/civisafe/pkg/types"

var AuditTrailLink = types.NavigationItem{
	Name: "Audit Trail",
	Href: "/police/audit",
}

var NavItems = []types.NavigationItem{
	AuditTrailLink,
}
