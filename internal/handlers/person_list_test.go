package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/people-manager/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPersonListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	persons := []models.PersonDB{
		{ID: 1, UserID: userID, Seq: 1, Name: "Bob", Roll: "101", Age: 20, Gender: "male"},
		{ID: 2, UserID: userID, Seq: 2, Name: "Carol", Roll: "102", Age: 22, Gender: "female"},
	}

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockPersonLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "defaults",
			target: "/persons",
			mockSetup: func(m *MockPersonLister) {
				m.EXPECT().
					List(gomock.Any(), userID, (*string)(nil), 0, 50).
					Return(persons, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "search and pagination",
			target: "/persons?search=bo&skip=1&limit=10",
			mockSetup: func(m *MockPersonLister) {
				search := "bo"
				m.EXPECT().
					List(gomock.Any(), userID, &search, 1, 10).
					Return(persons[:1], nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:         "negative skip",
			target:       "/persons?skip=-1",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "non-numeric skip",
			target:       "/persons?skip=abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "zero limit",
			target:       "/persons?limit=0",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "internal server error",
			target: "/persons",
			mockSetup: func(m *MockPersonLister) {
				m.EXPECT().
					List(gomock.Any(), userID, (*string)(nil), 0, 50).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPersonLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewPersonListHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = authedRequest(req, userID)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp PersonListResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Len(t, resp.Items, tt.expectedLen)
			}
		})
	}
}

func TestPersonListHandler_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPersonListHandler(NewMockPersonLister(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/persons", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
}
