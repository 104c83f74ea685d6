package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/civisafe/civisafe/modules/registry/domain/entities/lead"
	"github.com/civisafe/civisafe/modules/registry/presentation/mappers"
	"github.com/civisafe/civisafe/modules/registry/presentation/viewmodels"
	"github.com/civisafe/civisafe/modules/registry/services"
	"github.com/civisafe/civisafe/pkg/application"
	"github.com/civisafe/civisafe/pkg/configuration"
	"github.com/civisafe/civisafe/pkg/httpapi"
)

type CitizenRegistryController struct {
	app          application.Application
	records      *services.RecordService
	leads        *services.LeadService
	contributors *services.ContributorService
	userHeader   string
	roleHeader   string
	basePath     string
}

func NewCitizenRegistryController(app application.Application) application.Controller {
	conf := configuration.Use()
	return &CitizenRegistryController{
		app:          app,
		records:      app.Service(services.RecordService{}).(*services.RecordService),
		leads:        app.Service(services.LeadService{}).(*services.LeadService),
		contributors: app.Service(services.ContributorService{}).(*services.ContributorService),
		userHeader:   conf.UserIDHeader,
		roleHeader:   conf.UserRoleHeader,
		basePath:     "/citizen/api/registry",
	}
}

func (c *CitizenRegistryController) Key() string {
	return c.basePath
}

func (c *CitizenRegistryController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.GetAreaRecords).Methods(http.MethodGet)
	router.HandleFunc("/leads", c.SubmitLead).Methods(http.MethodPost)
	router.HandleFunc("/sightings", c.AddSighting).Methods(http.MethodPost)
	router.HandleFunc("/contributors/top", c.GetTopContributors).Methods(http.MethodGet)
}

// GetAreaRecords lists missing persons and criminals around the caller. An
// explicit ?pincode= overrides the profile pincode.
func (c *CitizenRegistryController) GetAreaRecords(w http.ResponseWriter, r *http.Request) {
	userID, err := useUserID(r, c.userHeader)
	if err != nil {
		writeUnauthorized(w)
		return
	}

	set, err := c.records.AreaRecords(r.Context(), userID, r.URL.Query().Get("pincode"))
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success        bool                        `json:"success"`
		PincodeUsed    string                      `json:"pincode_used"`
		MissingPersons []*viewmodels.MissingPerson `json:"missing_persons"`
		Criminals      []*viewmodels.Criminal      `json:"criminals"`
	}{
		Success:        true,
		PincodeUsed:    set.Pincode,
		MissingPersons: mappers.MissingPersonsToViewModels(set.MissingPersons),
		Criminals:      mappers.CriminalsToViewModels(set.Criminals),
	})
}

func (c *CitizenRegistryController) SubmitLead(w http.ResponseWriter, r *http.Request) {
	userID, err := useUserID(r, c.userHeader)
	if err != nil {
		writeUnauthorized(w)
		return
	}

	dto := &lead.CreateDTO{}
	if err := decodeJSON(r, dto); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	dto.Normalize()
	if fieldErrs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, fieldErrs)
		return
	}

	created, err := c.leads.SubmitLead(r.Context(), userID, dto)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusCreated, &struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Data    *viewmodels.Lead `json:"data"`
	}{
		Success: true,
		Message: "Lead submitted successfully",
		Data:    mappers.LeadToViewModel(created),
	})
}

func (c *CitizenRegistryController) AddSighting(w http.ResponseWriter, r *http.Request) {
	userID, err := useUserID(r, c.userHeader)
	if err != nil {
		writeUnauthorized(w)
		return
	}
	role := r.Header.Get(c.roleHeader)
	if role == "" {
		role = "citizen"
	}

	dto := &lead.SightingDTO{}
	if err := decodeJSON(r, dto); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if fieldErrs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, fieldErrs)
		return
	}

	created, err := c.leads.AddSighting(r.Context(), userID, role, dto)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusCreated, &struct {
		Success bool                 `json:"success"`
		Data    *viewmodels.Sighting `json:"data"`
	}{
		Success: true,
		Data:    mappers.SightingToViewModel(created),
	})
}

func (c *CitizenRegistryController) GetTopContributors(w http.ResponseWriter, r *http.Request) {
	userID, err := useUserID(r, c.userHeader)
	if err != nil {
		writeUnauthorized(w)
		return
	}

	top, err := c.contributors.TopInArea(r.Context(), userID)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success bool                      `json:"success"`
		Message string                    `json:"message"`
		Data    []*viewmodels.Contributor `json:"data"`
	}{
		Success: true,
		Message: "Top contributors fetched successfully",
		Data:    mappers.ContributorsToViewModels(top),
	})
}
