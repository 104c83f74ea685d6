package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/civisafe/civisafe/modules/audit/domain/entities/actionlog"
	"github.com/civisafe/civisafe/modules/audit/presentation/mappers"
	"github.com/civisafe/civisafe/modules/audit/presentation/viewmodels"
	"github.com/civisafe/civisafe/modules/audit/services"
	"github.com/civisafe/civisafe/pkg/application"
	"github.com/civisafe/civisafe/pkg/configuration"
	"github.com/civisafe/civisafe/pkg/httpapi"
)

const maxPageSize = 200

var errMissingIdentity = errors.New("missing or invalid user identity header")

// AuditController exposes the complaint audit trail to the police portal.
type AuditController struct {
	app        application.Application
	audit      *services.AuditService
	userHeader string
	basePath   string
}

func NewAuditController(app application.Application) application.Controller {
	return &AuditController{
		app:        app,
		audit:      app.Service(services.AuditService{}).(*services.AuditService),
		userHeader: configuration.Use().UserIDHeader,
		basePath:   "/police/api/audit",
	}
}

func (c *AuditController) Key() string {
	return c.basePath
}

func (c *AuditController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

func (c *AuditController) List(w http.ResponseWriter, r *http.Request) {
	if _, err := useUserID(r, c.userHeader); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnauthorized, "", "Unauthorized", nil)
		return
	}

	params, err := findParamsFromQuery(r)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "", err.Error(), nil)
		return
	}

	entries, err := c.audit.List(r.Context(), params)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "", "Internal server error", nil)
		return
	}
	total, err := c.audit.Count(r.Context(), params)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "", "Internal server error", nil)
		return
	}

	_ = httpapi.WriteJSON(w, http.StatusOK, &struct {
		Success bool                    `json:"success"`
		Total   int64                   `json:"total"`
		Logs    []*viewmodels.ActionLog `json:"logs"`
	}{
		Success: true,
		Total:   total,
		Logs:    mappers.ActionLogsToViewModels(entries),
	})
}

func useUserID(r *http.Request, header string) (int64, error) {
	raw := r.Header.Get(header)
	if raw == "" {
		return 0, errMissingIdentity
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errMissingIdentity
	}
	return id, nil
}

func findParamsFromQuery(r *http.Request) (*actionlog.FindParams, error) {
	params := &actionlog.FindParams{Action: r.URL.Query().Get("action")}

	if raw := r.URL.Query().Get("complaint_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, errors.New("complaint_id must be a positive integer")
		}
		params.ComplaintID = id
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return nil, errors.New("limit must be a positive integer")
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}
		params.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return nil, errors.New("offset must not be negative")
		}
		params.Offset = offset
	}
	return params, nil
}
