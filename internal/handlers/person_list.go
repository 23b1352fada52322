package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/people-manager/internal/models"
)

// PersonLister defines the interface that the person service must implement.
type PersonLister interface {
	List(ctx context.Context, userID uuid.UUID, search *string, offset, limit int) ([]models.PersonDB, error)
}

// Default and bounds for list pagination.
const (
	defaultListLimit = 50
)

// PersonListResponse represents a page of person records
// swagger:model PersonListResponse
type PersonListResponse struct {
	// Records ordered by sequence number ascending
	Items []PersonResponse `json:"items"`

	// Requested offset
	Skip int `json:"skip"`

	// Requested limit
	Limit int `json:"limit"`
}

// NewPersonListHandler returns an HTTP handler that lists the caller's
// person records ordered by sequence number.
// @Summary List persons
// @Description Lists the authenticated user's records, optionally filtered by a case-insensitive name substring
// @Tags persons
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive name substring"
// @Param skip query int false "Pagination offset, >= 0" default(0)
// @Param limit query int false "Page size, >= 1" default(50)
// @Success 200 {object} handlers.PersonListResponse "Page of records"
// @Failure 400 {object} handlers.PersonErrorResponse "Invalid pagination parameters"
// @Failure 401 "Missing or invalid bearer token"
// @Router /persons [get]
func NewPersonListHandler(svc PersonLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		q := r.URL.Query()

		var search *string
		if s := q.Get("search"); s != "" {
			search = &s
		}

		skip := 0
		if v := q.Get("skip"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writePersonError(w, http.StatusBadRequest, "skip must be a non-negative integer")
				return
			}
			skip = n
		}

		limit := defaultListLimit
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				writePersonError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = n
		}

		persons, err := svc.List(r.Context(), userID, search, skip, limit)
		if err != nil {
			logInternalError(r, err)
			writePersonError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		items := make([]PersonResponse, 0, len(persons))
		for i := range persons {
			items = append(items, newPersonResponse(&persons[i]))
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PersonListResponse{
			Items: items,
			Skip:  skip,
			Limit: limit,
		})
	}
}
