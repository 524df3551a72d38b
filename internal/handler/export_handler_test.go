package handler

import (
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
	"github.com/dethrtrns/techwondoe-test-task/internal/mocks"
)

func TestExportHandler_DownloadCSV(t *testing.T) {
	t.Run("streams all users as csv", func(t *testing.T) {
		mockService := mocks.NewMockUserService(t)
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		mockService.On("ListUsers", mock.Anything).Return([]domain.User{
			{ID: "a1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleAdmin, Avatar: "https://example.com/a.png", Status: domain.StatusActive, CreatedAt: now},
			{ID: "b2", Name: "Bob", Email: "bob@example.com", Role: domain.RoleSalesRep, Avatar: "https://example.com/b.png", Status: domain.StatusInvited, CreatedAt: now},
		}, nil)

		router := newTestRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/export", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
		assert.Contains(t, w.Header().Get("Content-Disposition"), "users.csv")

		records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, csvHeader, records[0])
		assert.Equal(t, "Alice", records[1][1])
		assert.Equal(t, "bob@example.com", records[2][2])
		assert.Equal(t, now.Format(TimeFormat), records[1][6])
	})

	t.Run("returns 500 on store error", func(t *testing.T) {
		mockService := mocks.NewMockUserService(t)
		mockService.On("ListUsers", mock.Anything).Return(nil, errors.New("store down"))

		router := newTestRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/api/export", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
