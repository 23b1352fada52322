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

// PersonDeleter defines the interface that the person service must implement.
type PersonDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, seq int64) (*models.PersonDB, error)
}

// NewPersonDeleteHandler returns an HTTP handler that removes one of the
// caller's records and returns its last state. Remaining records keep their
// sequence numbers.
// @Summary Delete a person
// @Description Removes the authenticated user's record and returns its last state
// @Tags persons
// @Produce json
// @Security BearerAuth
// @Param seq path int true "Per-owner sequence number"
// @Success 200 {object} handlers.PersonResponse "Last state of the removed record"
// @Failure 401 "Missing or invalid bearer token"
// @Failure 404 {object} handlers.PersonErrorResponse "No such record owned by the caller"
// @Router /persons/{seq} [delete]
func NewPersonDeleteHandler(svc PersonDeleter) http.HandlerFunc {
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

		person, err := svc.Delete(r.Context(), userID, seq)
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
