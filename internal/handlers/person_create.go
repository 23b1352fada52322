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

// PersonCreator defines the interface that the person service must implement.
type PersonCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name, roll string, age int, gender string) (*models.PersonDB, error)
}

// PersonCreateRequest represents the JSON body for creating a person
// swagger:model PersonCreateRequest
type PersonCreateRequest struct {
	// Name
	// required: true
	// default: Bob
	Name string `json:"name"`

	// Roll identifier
	// required: true
	// default: 101
	Roll string `json:"roll"`

	// Age, non-negative
	// required: true
	// default: 20
	Age int `json:"age"`

	// Gender
	// required: true
	// default: M
	Gender string `json:"gender"`
}

// NewPersonCreateHandler returns an HTTP handler that creates a person record
// owned by the caller. The record gets the caller's next sequence number.
// @Summary Create a person
// @Description Creates a person record owned by the authenticated user with the next per-owner sequence number
// @Tags persons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param personCreateRequest body handlers.PersonCreateRequest true "Person to create"
// @Success 201 {object} handlers.PersonResponse "Created record including both identifiers"
// @Failure 400 {object} handlers.PersonErrorResponse "Invalid request"
// @Failure 401 "Missing or invalid bearer token"
// @Router /persons [post]
func NewPersonCreateHandler(svc PersonCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
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

		person, err := svc.Create(r.Context(), userID, req.Name, req.Roll, req.Age, req.Gender)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAge):
				writePersonError(w, http.StatusBadRequest, "age must be a non-negative integer")
			default:
				logInternalError(r, err)
				writePersonError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(newPersonResponse(person))
	}
}
