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

// PersonReplacer defines the interface that the person service must implement.
type PersonReplacer interface {
	Replace(ctx context.Context, userID uuid.UUID, seq int64, name, roll string, age int, gender string) (*models.PersonDB, error)
}

// NewPersonReplaceHandler returns an HTTP handler that overwrites all
// mutable fields of one of the caller's records. Identity fields (global id,
// owner, sequence number) are never changed.
// @Summary Replace a person
// @Description Overwrites name, roll, age and gender of the authenticated user's record
// @Tags persons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param seq path int true "Per-owner sequence number"
// @Param personCreateRequest body handlers.PersonCreateRequest true "Full field set"
// @Success 200 {object} handlers.PersonResponse "Updated record"
// @Failure 400 {object} handlers.PersonErrorResponse "Invalid request"
// @Failure 401 "Missing or invalid bearer token"
// @Failure 404 {object} handlers.PersonErrorResponse "No such record owned by the caller"
// @Router /persons/{seq} [put]
func NewPersonReplaceHandler(svc PersonReplacer) http.HandlerFunc {
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

		var req PersonCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writePersonError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Name == "" || req.Roll == "" || req.Gender == "" {
			writePersonError(w, http.StatusBadRequest, "name, roll and gender are required")
			return
		}

		person, err := svc.Replace(r.Context(), userID, seq, req.Name, req.Roll, req.Age, req.Gender)
		if err != nil {
			switch {
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
