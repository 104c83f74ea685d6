package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/civisafe/civisafe/modules/complaints/domain/aggregates/complaint"
	"github.com/civisafe/civisafe/modules/complaints/presentation/mappers"
	"github.com/civisafe/civisafe/modules/complaints/presentation/viewmodels"
	"github.com/civisafe/civisafe/modules/complaints/services"
	"github.com/civisafe/civisafe/pkg/application"
	"github.com/civisafe/civisafe/pkg/configuration"
	"github.com/civisafe/civisafe/pkg/httpapi"
)

type CitizenAPIController struct {
	app        application.Application
	complaints *services.ComplaintService
	userHeader string
	basePath   string
}

func NewCitizenAPIController(app application.Application) application.Controller {
	return &CitizenAPIController{
		app:        app,
		complaints: app.Service(services.ComplaintService{}).(*services.ComplaintService),
		userHeader: configuration.Use().UserIDHeader,
		basePath:   "/citizen/api/complaints",
	}
}

func (c *CitizenAPIController) Key() string {
	return c.basePath
}

func (c *CitizenAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.Submit).Methods(http.MethodPost)
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/{complaintId:[0-9]+}", c.Delete).Methods(http.MethodDelete)
}

func (c *CitizenAPIController) Submit(w http.ResponseWriter, r *http.Request) {
	userID, err := useUserID(r, c.userHeader)
	if err != nil {
		writeUnauthorized(w)
		return
	}

	dto := &complaint.CreateDTO{}
	if err := decodeJSON(r, dto); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	dto.Normalize()
	if fieldErrs, ok := dto.Ok(); !ok {
		_ = httpapi.WriteJSON(w, http.StatusBadRequest, &struct {
			Success bool              `json:"success"`
			Message string            `json:"message"`
			Errors  map[string]string `json:"errors"`
		}{
			Success: false,
			Message: "Validation failed",
			Errors:  fieldErrs,
		})
		return
	}

	created, err := c.complaints.Submit(r.Context(), userID, dto)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusCreated, &struct {
		Success   bool                  `json:"success"`
		Message   string                `json:"message"`
		Complaint *viewmodels.Complaint `json:"complaint"`
	}{
		Success:   true,
		Message:   "Complaint registered successfully",
		Complaint: mappers.ComplaintToViewModel(created),
	})
}

func (c *CitizenAPIController) List(w http.ResponseWriter, r *http.Request) {
	userID, err := useUserID(r, c.userHeader)
	if err != nil {
		writeUnauthorized(w)
		return
	}

	list, err := c.complaints.ListByReporter(r.Context(), userID)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success    bool                    `json:"success"`
		Complaints []*viewmodels.Complaint `json:"complaints"`
	}{
		Success:    true,
		Complaints: mappers.ComplaintsToViewModels(list),
	})
}

func (c *CitizenAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := useUserID(r, c.userHeader)
	if err != nil {
		writeUnauthorized(w)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["complaintId"], 10, 64)
	if err != nil {
		writeBadRequest(w, "Invalid complaint id")
		return
	}

	if err := c.complaints.Delete(r.Context(), id, userID); err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{
		Success: true,
		Message: "Complaint deleted successfully",
	})
}
