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

// PersonGetter defines the interface that the person service must implement.
type PersonGetter interface {
	Get(ctx context.Context, userID uuid.UUID, seq int64) (*models.PersonDB, error)
}

// NewPersonGetHandler returns an HTTP handler that fetches one of the
// caller's records by sequence number.
// @Summary Get a person
// @Description Returns the authenticated user's record with the given sequence number
// @Tags persons
// @Produce json
// @Security BearerAuth
// @Param seq path int true "Per-owner sequence number"
// @Success 200 {object} handlers.PersonResponse "The record"
// @Failure 401 "Missing or invalid bearer token"
// @Failure 404 {object} handlers.PersonErrorResponse "No such record owned by the caller"
// @Router /persons/{seq} [get]
func NewPersonGetHandler(svc PersonGetter) http.HandlerFunc {
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

		person, err := svc.Get(r.Context(), userID, seq)
		if err != nil {
			switch {
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
