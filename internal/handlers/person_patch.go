package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/people-manager/internal/models"
	"github.com/sbilibin2017/people-manager/internal/services"
)

// PersonPatcher defines the interface that the person service must implement.
type PersonPatcher interface {
	PartialUpdate(ctx context.Context, userID uuid.UUID, seq int64, fields map[string]any) (*models.PersonDB, error)
}

// NewPersonPatchHandler returns an HTTP handler that applies a partial update
// to one of the caller's records. The payload must contain at least one
// updatable field and no identity field.
// @Summary Partially update a person
// @Description Applies only the supplied fields. Identity fields are rejected; unrecognized fields are skipped.
// @Tags persons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param seq path int true "Per-owner sequence number"
// @Param fields body object true "Subset of updatable fields (name, roll, age, gender)"
// @Success 200 {object} handlers.PersonResponse "Updated record"
// @Failure 400 {object} handlers.PersonErrorResponse "Empty payload, protected field, or no recognized field"
// @Failure 401 "Missing or invalid bearer token"
// @Failure 404 {object} handlers.PersonErrorResponse "No such record owned by the caller"
// @Router /persons/{seq} [patch]
func NewPersonPatchHandler(svc PersonPatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		seq, err := parsePersonSeq(r)
		if err != nil {
			writePersonError(w, http.StatusNotFound, "Person not found")
			return
		}

		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			writePersonError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		person, err := svc.PartialUpdate(r.Context(), userID, seq, fields)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyUpdate):
				writePersonError(w, http.StatusBadRequest, "payload must contain at least one updatable field")
			case errors.Is(err, services.ErrProtectedField):
				writePersonError(w, http.StatusBadRequest, "payload must not contain identity fields")
			case errors.Is(err, services.ErrInvalidAge):
				writePersonError(w, http.StatusBadRequest, "age must be a non-negative integer")
			case errors.Is(err, services.ErrPersonNotFound):
				writePersonError(w, http.StatusNotFound, "Person not found")
			default:
				logInternalError(r, err)
				writePersonError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newPersonResponse(person))
	}
}
