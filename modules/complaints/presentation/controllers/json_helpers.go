package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/civisafe/civisafe/modules/complaints/domain/aggregates/complaint"
	"github.com/civisafe/civisafe/modules/complaints/domain/entities/officer"
	"github.com/civisafe/civisafe/modules/complaints/services"
	"github.com/civisafe/civisafe/pkg/constants"
	"github.com/civisafe/civisafe/pkg/httpapi"
)

var errMissingIdentity = errors.New("missing or invalid user identity header")

// useUserID reads the authenticated account id the identity layer puts on
// the request. The auth proxy owns session mechanics; this layer only
// trusts the forwarded header.
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

func writeUnauthorized(w http.ResponseWriter) {
	_ = httpapi.WriteError(w, http.StatusUnauthorized, "", "Unauthorized", nil)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	_ = httpapi.WriteError(w, http.StatusBadRequest, "", message, nil)
}

// writeDomainError converts service and repository failures into the API
// error taxonomy: validation 400, missing rows 404, everything else 500.
func writeDomainError(w http.ResponseWriter, logger *logrus.Entry, err error) {
	switch {
	case errors.Is(err, complaint.ErrNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "", "Complaint not found", nil)
	case errors.Is(err, officer.ErrNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "", "Police details not found", nil)
	case errors.Is(err, complaint.ErrPincodeMismatch):
		writeBadRequest(w, "Sub-Inspector station pincode does not match the complaint pincode")
	case errors.Is(err, complaint.ErrInvalidStatus):
		writeBadRequest(w, "Invalid status value")
	case errors.Is(err, officer.ErrInvalidRank):
		writeBadRequest(w, "Invalid police rank")
	case errors.Is(err, services.ErrMissingStationPincode):
		writeBadRequest(w, "Station pincode not found for officer")
	case errors.Is(err, services.ErrEmptyCaseFileURL):
		writeBadRequest(w, "Case file URL is required")
	default:
		logger.WithError(err).Error("request failed")
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "", "Internal server error", nil)
	}
}
