package complaints

import (
	"embed"

	"github.com/civisafe/civisafe/modules/complaints/infrastructure/persistence"
	"github.com/civisafe/civisafe/modules/complaints/presentation/controllers"
	"github.com/civisafe/civisafe/modules/complaints/services"
	"github.com/civisafe/civisafe/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var migrationFiles embed.FS

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "complaints"
}

func (m *Module) Register(app application.Application) error {
	complaintRepo := persistence.NewComplaintRepository()
	officerRepo := persistence.NewOfficerRepository()

	app.RegisterServices(
		services.NewVisibilityService(complaintRepo, officerRepo),
		services.NewAssignmentService(complaintRepo, officerRepo, app.EventPublisher()),
		services.NewComplaintService(complaintRepo, app.EventPublisher()),
	)

	app.RegisterControllers(
		controllers.NewPoliceAPIController(app),
		controllers.NewCitizenAPIController(app),
	)

	app.Migrations().RegisterSchema(&migrationFiles, "infrastructure/persistence/schema")
	return nil
}
