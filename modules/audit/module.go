package audit

import (
	"embed"

	"github.com/civisafe/civisafe/modules/audit/handlers"
	"github.com/civisafe/civisafe/modules/audit/infrastructure/persistence"
	"github.com/civisafe/civisafe/modules/audit/presentation/controllers"
	"github.com/civisafe/civisafe/modules/audit/services"
	"github.com/civisafe/civisafe/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "audit"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewAuditService(persistence.NewActionLogRepository()),
	)

	app.RegisterControllers(
		controllers.NewAuditController(app),
	)

	handlers.RegisterComplaintEventHandlers(app)

	app.Migrations().RegisterSchema(&migrationFiles, "infrastructure/persistence/schema")
	return nil
}
