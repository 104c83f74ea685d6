package registry

import (
	"embed"

	complaintpersistence "github.com/civisafe/civisafe/modules/complaints/infrastructure/persistence"
	"github.com/civisafe/civisafe/modules/registry/infrastructure/persistence"
	"github.com/civisafe/civisafe/modules/registry/presentation/controllers"
	"github.com/civisafe/civisafe/modules/registry/services"
	"github.com/civisafe/civisafe/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "registry"
}

func (m *Module) Register(app application.Application) error {
	missingRepo := persistence.NewMissingPersonRepository()
	criminalRepo := persistence.NewCriminalRepository()
	leadRepo := persistence.NewLeadRepository()
	contributorRepo := persistence.NewContributorRepository()
	officerRepo := complaintpersistence.NewOfficerRepository()

	app.RegisterServices(
		services.NewRecordService(missingRepo, criminalRepo, officerRepo, contributorRepo),
		services.NewLeadService(leadRepo),
		services.NewContributorService(contributorRepo),
	)

	app.RegisterControllers(
		controllers.NewPoliceRegistryController(app),
		controllers.NewCitizenRegistryController(app),
	)

	app.Migrations().RegisterSchema(&migrationFiles, "infrastructure/persistence/schema")
	return nil
}
