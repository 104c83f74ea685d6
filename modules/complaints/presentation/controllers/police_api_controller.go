package controllers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/civisafe/civisafe/modules/complaints/presentation/mappers"
	"github.com/civisafe/civisafe/modules/complaints/presentation/viewmodels"
	"github.com/civisafe/civisafe/modules/complaints/services"
	"github.com/civisafe/civisafe/pkg/application"
	"github.com/civisafe/civisafe/pkg/configuration"
	"github.com/civisafe/civisafe/pkg/httpapi"
)

type PoliceAPIController struct {
	app        application.Application
	visibility *services.VisibilityService
	assignment *services.AssignmentService
	complaints *services.ComplaintService
	userHeader string
	basePath   string
}

func NewPoliceAPIController(app application.Application) application.Controller {
	return &PoliceAPIController{
		app:        app,
		visibility: app.Service(services.VisibilityService{}).(*services.VisibilityService),
		assignment: app.Service(services.AssignmentService{}).(*services.AssignmentService),
		complaints: app.Service(services.ComplaintService{}).(*services.ComplaintService),
		userHeader: configuration.Use().UserIDHeader,
		basePath:   "/police/api/complaints",
	}
}

func (c *PoliceAPIController) Key() string {
	return c.basePath
}

func (c *PoliceAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.GetComplaints).Methods(http.MethodGet)
	router.HandleFunc("/assign", c.Assign).Methods(http.MethodPost)
	router.HandleFunc("/{complaintId:[0-9]+}/status", c.UpdateStatus).Methods(http.MethodPatch)
	router.HandleFunc("/{complaintId:[0-9]+}/case-file", c.UpdateCaseFile).Methods(http.MethodPatch)
}

// GetComplaints resolves the rank-scoped view: a Sub-Inspector's own
// caseload, or an Inspector's station-wide caseload plus per-subordinate
// workload counts.
func (c *PoliceAPIController) GetComplaints(w http.ResponseWriter, r *http.Request) {
	userID, err := useUserID(r, c.userHeader)
	if err != nil {
		writeUnauthorized(w)
		return
	}

	result, err := c.visibility.VisibleComplaints(r.Context(), userID)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success       bool                        `json:"success"`
		Message       string                      `json:"message"`
		Complaints    []*viewmodels.Complaint     `json:"complaints"`
		SubInspectors []*viewmodels.SubInspector  `json:"subInspectors"`
	}{
		Success:       true,
		Message:       "Complaints fetched successfully",
		Complaints:    mappers.ComplaintsToViewModels(result.Complaints),
		SubInspectors: mappers.SubInspectorsToViewModels(result.SubInspectors),
	})
}

type assignRequest struct {
	PoliceID    int64 `json:"police_id"`
	ComplaintID int64 `json:"complaint_id"`
}

func (c *PoliceAPIController) Assign(w http.ResponseWriter, r *http.Request) {
	if _, err := useUserID(r, c.userHeader); err != nil {
		writeUnauthorized(w)
		return
	}

	var body assignRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}
	if body.PoliceID == 0 || body.ComplaintID == 0 {
		writeBadRequest(w, "police_id and complaint_id are required")
		return
	}

	assigned, err := c.assignment.Assign(r.Context(), body.PoliceID, body.ComplaintID)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success   bool                  `json:"success"`
		Message   string                `json:"message"`
		Complaint *viewmodels.Complaint `json:"complaint"`
	}{
		Success:   true,
		Message:   "Complaint assigned successfully",
		Complaint: mappers.ComplaintToViewModel(assigned),
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
	Remark string `json:"remark"`
}

func (c *PoliceAPIController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := useUserID(r, c.userHeader); err != nil {
		writeUnauthorized(w)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["complaintId"], 10, 64)
	if err != nil {
		writeBadRequest(w, "Invalid complaint id")
		return
	}

	var body updateStatusRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	updated, err := c.complaints.UpdateStatus(r.Context(), id, body.Status, body.Remark)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success          bool                  `json:"success"`
		UpdatedComplaint *viewmodels.Complaint `json:"updatedComplaint"`
	}{
		Success:          true,
		UpdatedComplaint: mappers.ComplaintToViewModel(updated),
	})
}

type updateCaseFileRequest struct {
	CaseFileURL string `json:"case_file_url"`
}

func (c *PoliceAPIController) UpdateCaseFile(w http.ResponseWriter, r *http.Request) {
	if _, err := useUserID(r, c.userHeader); err != nil {
		writeUnauthorized(w)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["complaintId"], 10, 64)
	if err != nil {
		writeBadRequest(w, "Invalid complaint id")
		return
	}

	var body updateCaseFileRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	updated, err := c.complaints.UpdateCaseFile(r.Context(), id, body.CaseFileURL)
	if err != nil {
		writeDomainError(w, requestLogger(r), err)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success          bool                  `json:"success"`
		Message          string                `json:"message"`
		UpdatedComplaint *viewmodels.Complaint `json:"updatedComplaint"`
	}{
		Success:          true,
		Message:          "Case file updated successfully",
		UpdatedComplaint: mappers.ComplaintToViewModel(updated),
	})
}
