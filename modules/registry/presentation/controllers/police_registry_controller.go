package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/civisafe/civisafe/modules/registry/domain/entities/criminal"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/lead"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/missingperson"
	"github.com/civisafe/civisafe/modules/registry/presentation/mappers"
	"github.com/civisafe/civisafe/modules/registry/presentation/viewmodels"
	"github.com/civisafe/civisafe/modules/registry/services"
	"github.com/civisafe/civisafe/pkg/application"
	"github.com/civisafe/civisafe/pkg/configuration"
	"github.com/civisafe/civisafe/pkg/httpapi"
	"github.com/civisafe/civisafe/pkg/middleware"
)

type PoliceRegistryController struct {
	app          application.Application
	records      *services.RecordService
	leads        *services.LeadService
	contributors *services.ContributorService
	userHeader   string
	basePath     string
}

func NewPoliceRegistryController(app application.Application) application.Controller {
	return &PoliceRegistryController{
		app:          app,
		records:      app.Service(services.RecordService{}).(*services.RecordService),
		leads:        app.Service(services.LeadService{}).(*services.LeadService),
		contributors: app.Service(services.ContributorService{}).(*services.ContributorService),
		userHeader:   configuration.Use().UserIDHeader,
		basePath:     "/police/api/registry",
	}
}

func (c *PoliceRegistryController) Key() string {
	return c.basePath
}

func (c *PoliceRegistryController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.GetStationRecords).Methods(http.MethodGet)
	router.HandleFunc("/missing/{id:[0-9]+}/leads", c.GetMissingPersonLeads).Methods(http.MethodGet)
	router.HandleFunc("/criminals/{id:[0-9]+}/leads", c.GetCriminalLeads).Methods(http.MethodGet)
	router.HandleFunc("/leads/search", c.SearchLeads).Methods(http.MethodPost)

	// Mutations run inside a per-request transaction.
	tx := middleware.WithTransaction()
	router.Handle("/missing", tx(http.HandlerFunc(c.AddMissingPerson))).Methods(http.MethodPost)
	router.Handle("/missing/{id:[0-9]+}", tx(http.HandlerFunc(c.UpdateMissingPerson))).Methods(http.MethodPatch)
	router.Handle("/missing/{id:[0-9]+}", tx(http.HandlerFunc(c.DeleteMissingPerson))).Methods(http.MethodDelete)
	router.Handle("/criminals", tx(http.HandlerFunc(c.AddCriminal))).Methods(http.MethodPost)
	router.Handle("/criminals/{id:[0-9]+}", tx(http.HandlerFunc(c.UpdateCriminal))).Methods(http.MethodPatch)
	router.Handle("/criminals/{id:[0-9]+}", tx(http.HandlerFunc(c.DeleteCriminal))).Methods(http.MethodDelete)
	router.Handle("/award-star", tx(http.HandlerFunc(c.AwardStar))).Methods(http.MethodPost)
}

func (c *PoliceRegistryController) GetStationRecords(w http.ResponseWriter, r *http.Request) {
	userID, err := useUserID(r, c.userHeader)
	if err != nil {
		writeUnauthorized(w)
		return
	}

	set, err := c.records.StationRecords(r.Context(), userID)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success        bool                        `json:"success"`
		MissingPersons []*viewmodels.MissingPerson `json:"missing_persons"`
		Criminals      []*viewmodels.Criminal      `json:"criminals"`
	}{
		Success:        true,
		MissingPersons: mappers.MissingPersonsToViewModels(set.MissingPersons),
		Criminals:      mappers.CriminalsToViewModels(set.Criminals),
	})
}

func (c *PoliceRegistryController) AddMissingPerson(w http.ResponseWriter, r *http.Request) {
	userID, err := useUserID(r, c.userHeader)
	if err != nil {
		writeUnauthorized(w)
		return
	}

	dto := &missingperson.CreateDTO{}
	if err := decodeJSON(r, dto); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if fieldErrs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, fieldErrs)
		return
	}

	created, err := c.records.AddMissingPerson(r.Context(), userID, dto)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusCreated, &struct {
		Success bool                      `json:"success"`
		Message string                    `json:"message"`
		Data    *viewmodels.MissingPerson `json:"data"`
	}{
		Success: true,
		Message: "Missing person added successfully",
		Data:    mappers.MissingPersonToViewModel(created),
	})
}

func (c *PoliceRegistryController) UpdateMissingPerson(w http.ResponseWriter, r *http.Request) {
	if _, err := useUserID(r, c.userHeader); err != nil {
		writeUnauthorized(w)
		return
	}

	id, ok := pathID(r, mux.Vars(r), "id")
	if !ok {
		writeBadRequest(w, "Invalid record id")
		return
	}

	dto := &missingperson.PatchDTO{}
	if err := decodeJSON(r, dto); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	updated, err := c.records.UpdateMissingPerson(r.Context(), id, dto)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success bool                      `json:"success"`
		Message string                    `json:"message"`
		Data    *viewmodels.MissingPerson `json:"data"`
	}{
		Success: true,
		Message: "Missing person updated successfully",
		Data:    mappers.MissingPersonToViewModel(updated),
	})
}

func (c *PoliceRegistryController) DeleteMissingPerson(w http.ResponseWriter, r *http.Request) {
	if _, err := useUserID(r, c.userHeader); err != nil {
		writeUnauthorized(w)
		return
	}

	id, ok := pathID(r, mux.Vars(r), "id")
	if !ok {
		writeBadRequest(w, "Invalid record id")
		return
	}

	deleted, err := c.records.DeleteMissingPerson(r.Context(), id)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success bool                      `json:"success"`
		Message string                    `json:"message"`
		Data    *viewmodels.MissingPerson `json:"data"`
	}{
		Success: true,
		Message: "Missing person deleted successfully",
		Data:    mappers.MissingPersonToViewModel(deleted),
	})
}

func (c *PoliceRegistryController) GetMissingPersonLeads(w http.ResponseWriter, r *http.Request) {
	if _, err := useUserID(r, c.userHeader); err != nil {
		writeUnauthorized(w)
		return
	}

	id, ok := pathID(r, mux.Vars(r), "id")
	if !ok {
		writeBadRequest(w, "Invalid record id")
		return
	}

	sightings, err := c.leads.SightingsFor(r.Context(), lead.RefMissing, id)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}
	writeSightings(w, sightings)
}

func (c *PoliceRegistryController) AddCriminal(w http.ResponseWriter, r *http.Request) {
	userID, err := useUserID(r, c.userHeader)
	if err != nil {
		writeUnauthorized(w)
		return
	}

	dto := &criminal.CreateDTO{}
	if err := decodeJSON(r, dto); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	dto.Normalize()
	if fieldErrs, ok := dto.Ok(); !ok {
		writeValidationErrors(w, fieldErrs)
		return
	}

	created, err := c.records.AddCriminal(r.Context(), userID, dto)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusCreated, &struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Data    *viewmodels.Criminal `json:"data"`
	}{
		Success: true,
		Message: "Criminal added successfully",
		Data:    mappers.CriminalToViewModel(created),
	})
}

func (c *PoliceRegistryController) UpdateCriminal(w http.ResponseWriter, r *http.Request) {
	if _, err := useUserID(r, c.userHeader); err != nil {
		writeUnauthorized(w)
		return
	}

	id, ok := pathID(r, mux.Vars(r), "id")
	if !ok {
		writeBadRequest(w, "Invalid record id")
		return
	}

	dto := &criminal.PatchDTO{}
	if err := decodeJSON(r, dto); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	updated, err := c.records.UpdateCriminal(r.Context(), id, dto)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Data    *viewmodels.Criminal `json:"data"`
	}{
		Success: true,
		Message: "Criminal updated successfully",
		Data:    mappers.CriminalToViewModel(updated),
	})
}

func (c *PoliceRegistryController) DeleteCriminal(w http.ResponseWriter, r *http.Request) {
	if _, err := useUserID(r, c.userHeader); err != nil {
		writeUnauthorized(w)
		return
	}

	id, ok := pathID(r, mux.Vars(r), "id")
	if !ok {
		writeBadRequest(w, "Invalid record id")
		return
	}

	deleted, err := c.records.DeleteCriminal(r.Context(), id)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Data    *viewmodels.Criminal `json:"data"`
	}{
		Success: true,
		Message: "Criminal deleted successfully",
		Data:    mappers.CriminalToViewModel(deleted),
	})
}

func (c *PoliceRegistryController) GetCriminalLeads(w http.ResponseWriter, r *http.Request) {
	if _, err := useUserID(r, c.userHeader); err != nil {
		writeUnauthorized(w)
		return
	}

	id, ok := pathID(r, mux.Vars(r), "id")
	if !ok {
		writeBadRequest(w, "Invalid record id")
		return
	}

	sightings, err := c.leads.SightingsFor(r.Context(), lead.RefCriminal, id)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}
	writeSightings(w, sightings)
}

type leadSearchRequest struct {
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Town      string `json:"town"`
	District  string `json:"district"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Country   string `json:"country"`
}

const searchDateLayout = "2006-01-02"

func (c *PoliceRegistryController) SearchLeads(w http.ResponseWriter, r *http.Request) {
	if _, err := useUserID(r, c.userHeader); err != nil {
		writeUnauthorized(w)
		return
	}

	var body leadSearchRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	filter := lead.Filter{
		Title:    body.Title,
		Town:     body.Town,
		District: body.District,
		State:    body.State,
		Pincode:  body.Pincode,
		Country:  body.Country,
	}
	if body.StartDate != "" {
		start, err := time.Parse(searchDateLayout, body.StartDate)
		if err != nil {
			writeBadRequest(w, "Invalid startDate, expected YYYY-MM-DD")
			return
		}
		filter.StartDate = start
	}
	if body.EndDate != "" {
		end, err := time.Parse(searchDateLayout, body.EndDate)
		if err != nil {
			writeBadRequest(w, "Invalid endDate, expected YYYY-MM-DD")
			return
		}
		// Inclusive end of day.
		filter.EndDate = end.Add(24*time.Hour - time.Second)
	}

	found, err := c.leads.Search(r.Context(), filter)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success bool               `json:"success"`
		Leads   []*viewmodels.Lead `json:"leads"`
	}{
		Success: true,
		Leads:   mappers.LeadsToViewModels(found),
	})
}

type awardStarRequest struct {
	UserID int64 `json:"user_id"`
}

// AwardStar credits a citizen with one contribution point for a lead that
// panned out.
func (c *PoliceRegistryController) AwardStar(w http.ResponseWriter, r *http.Request) {
	if _, err := useUserID(r, c.userHeader); err != nil {
		writeUnauthorized(w)
		return
	}

	var body awardStarRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if body.UserID == 0 {
		writeBadRequest(w, "user_id is required")
		return
	}

	awarded, err := c.contributors.AwardPoint(r.Context(), body.UserID)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success bool                    `json:"success"`
		Message string                  `json:"message"`
		Data    *viewmodels.Contributor `json:"data"`
	}{
		Success: true,
		Message: "Contribution points increased by 1",
		Data:    mappers.ContributorToViewModel(awarded),
	})
}

func writeSightings(w http.ResponseWriter, sightings []lead.Sighting) {
	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success bool                   `json:"success"`
		Leads   []*viewmodels.Sighting `json:"leads"`
	}{
		Success: true,
		Leads:   mappers.SightingsToViewModels(sightings),
	})
}
