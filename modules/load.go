package modules

import (
	"slices"

	"github.com/civisafe/civisafe/modules/audit"
	"github.com/civisafe/civisafe/modules/complaints"
	"github.com/civisafe/civisafe/modules/registry"
	"github.com/civisafe/civisafe/pkg/application"
)

var (
	BuiltInModules = []application.Module{
		complaints.NewModule(),
		registry.NewModule(),
		audit.NewModule(),
	}

	NavLinks = slices.Concat(
		complaints.NavItems,
		registry.NavItems,
		audit.NavItems,
	)
)

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
