package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/civisafe/civisafe/modules/complaints/domain/entities/officer"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/contributor"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/criminal"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/lead"
	"github.com/civisafe/civisafe/modules/registry/domain/entities/missingperson"
	"github.com/civisafe/civisafe/modules/registry/services"
	"github.com/civisafe/civisafe/pkg/constants"
	"github.com/civisafe/civisafe/pkg/httpapi"
	"github.com/civisafe/civisafe/pkg/serrors"
)

var errMissingIdentity = errors.New("missing or invalid user identity header")

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

func requestLogger(r *http.Request) *logrus.Entry {
	if entry, ok := r.Context().Value(constants.LoggerKey).(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

func decodeJSON(r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(dst)
}

func pathID(r *http.Request, vars map[string]string, name string) (int64, bool) {
	id, err := strconv.ParseInt(vars[name], 10, 64)
	return id, err == nil && id > 0
}

func writeUnauthorized(w http.ResponseWriter) {
	_ = httpapi.WriteError(w, http.StatusUnauthorized, "", "Unauthorized", nil)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	_ = httpapi.WriteError(w, http.StatusBadRequest, "", message, nil)
}

func writeValidationErrors(w http.ResponseWriter, fieldErrs serrors.ValidationErrors) {
	_ = httpapi.WriteJSON(w, http.StatusBadRequest, &struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}{
		Success: false,
		Message: "Validation failed",
		Errors:  fieldErrs,
	})
}

func writeDomainError(w http.ResponseWriter, logger *logrus.Entry, err error) {
	switch {
	case errors.Is(err, missingperson.ErrNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "", "Missing person not found", nil)
	case errors.Is(err, criminal.ErrNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "", "Criminal not found", nil)
	case errors.Is(err, contributor.ErrNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "", "User not found", nil)
	case errors.Is(err, officer.ErrNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "", "Police account not found", nil)
	case errors.Is(err, missingperson.ErrInvalidStatus),
		errors.Is(err, criminal.ErrInvalidStatus):
		writeBadRequest(w, "Invalid status value")
	case errors.Is(err, criminal.ErrInvalidStar):
		writeBadRequest(w, "Invalid star value, it must be between 1 and 5")
	case errors.Is(err, missingperson.ErrEmptyPatch),
		errors.Is(err, criminal.ErrEmptyPatch):
		writeBadRequest(w, "No valid fields to update")
	case errors.Is(err, lead.ErrInvalidRefType):
		writeBadRequest(w, "Invalid reference type")
	case errors.Is(err, services.ErrMissingAreaPincode):
		writeBadRequest(w, "No pincode provided and profile has no pincode")
	default:
		logger.WithError(err).Error("request failed")
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "", "Internal server error", nil)
	}
}
