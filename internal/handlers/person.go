package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/people-manager/internal/logger"
	"github.com/sbilibin2017/people-manager/internal/middlewares"
	"github.com/sbilibin2017/people-manager/internal/models"
)

// PersonResponse represents a person record in API responses
// swagger:model PersonResponse
type PersonResponse struct {
	// Global record identifier
	ID int64 `json:"id"`

	// Per-owner sequence number, the addressing key
	Seq int64 `json:"seq"`

	// Name
	Name string `json:"name"`

	// Roll identifier
	Roll string `json:"roll"`

	// Age
	Age int `json:"age"`

	// Gender
	Gender string `json:"gender"`
}

// PersonErrorResponse represents an error response for person operations
// swagger:model PersonErrorResponse
type PersonErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

func newPersonResponse(p *models.PersonDB) PersonResponse {
	return PersonResponse{
		ID:     p.ID,
		Seq:    p.Seq,
		Name:   p.Name,
		Roll:   p.Roll,
		Age:    p.Age,
		Gender: p.Gender,
	}
}

func writePersonError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(PersonErrorResponse{Error: msg})
}

// logInternalError logs an unexpected handler failure together with the
// request ID, so the entry can be correlated with the request/response lines.
func logInternalError(r *http.Request, err error) {
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.GetRequestIDFromContext(r.Context()),
		"err", err,
	)
}

// currentUserID resolves the authenticated user from the request context.
// Writes a 401 challenge and returns false if authentication is missing.
func currentUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.GetUserIDFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		w.WriteHeader(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

// parsePersonSeq reads the {seq} route parameter.
func parsePersonSeq(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "seq"), 10, 64)
}
