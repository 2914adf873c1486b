package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cargo-tracker/internal/core/respond"
	"cargo-tracker/internal/features/notices/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNoticeService is a mock implementation of ports.NoticeService
type MockNoticeService struct {
	mock.Mock
}

func (m *MockNoticeService) Post(ctx context.Context, title, message string, severity domain.Severity, statuses []string, duration int) (*domain.Notice, error) {
	args := m.Called(ctx, title, message, severity, statuses, duration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}

func (m *MockNoticeService) List(ctx context.Context) ([]domain.Notice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notice), args.Error(1)
}

func (m *MockNoticeService) ForStatus(ctx context.Context, status string) ([]domain.Notice, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notice), args.Error(1)
}

func (m *MockNoticeService) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupApp(service *MockNoticeService) *fiber.App {
	app := fiber.New()
	handler := NewNoticeHandler(service)
	app.Post("/notices", handler.PostNotice)
	app.Get("/notices", handler.ListNotices)
	app.Delete("/notices/:id", handler.RemoveNotice)
	return app
}

func postJSON(t *testing.T, app *fiber.App, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/notices", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestNoticeHandler_PostNotice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockNoticeService)
		app := setupApp(mockService)

		mockService.On("Post", mock.Anything, "Border closed", "Erlian closed until Monday", domain.SeverityWarning, []string{"in_transit"}, 3600).
			Return(&domain.Notice{ID: "n1", Title: "Border closed"}, nil).Once()

		resp := postJSON(t, app, PostNoticeRequest{
			Title:    "Border closed",
			Message:  "Erlian closed until Monday",
			Severity: domain.SeverityWarning,
			Statuses: []string{"in_transit"},
			Duration: 3600,
		})

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		mockService := new(MockNoticeService)
		app := setupApp(mockService)

		mockService.On("Post", mock.Anything, "x", "", domain.SeverityInfo, []string{"LOST"}, 0).
			Return(nil, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, "LOST")).Once()

		resp := postJSON(t, app, PostNoticeRequest{Title: "x", Severity: domain.SeverityInfo, Statuses: []string{"LOST"}})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body respond.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Unknown order status in statuses", body.Error)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidSeverity", func(t *testing.T) {
		mockService := new(MockNoticeService)
		app := setupApp(mockService)

		mockService.On("Post", mock.Anything, "x", "", domain.Severity("LOUD"), []string(nil), 0).
			Return(nil, domain.ErrInvalidSeverity).Once()

		resp := postJSON(t, app, PostNoticeRequest{Title: "x", Severity: "LOUD"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body respond.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body.Error, "Invalid severity")
		mockService.AssertExpectations(t)
	})
}

func TestNoticeHandler_ListNotices(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockNoticeService)
		app := setupApp(mockService)

		mockService.On("List", mock.Anything).Return([]domain.Notice{{ID: "n1"}}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/notices", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InternalError", func(t *testing.T) {
		mockService := new(MockNoticeService)
		app := setupApp(mockService)

		mockService.On("List", mock.Anything).Return(nil, errors.New("redis down")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/notices", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body respond.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotContains(t, body.Error, "redis")
	})
}

func TestNoticeHandler_RemoveNotice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockNoticeService)
		app := setupApp(mockService)

		mockService.On("Remove", mock.Anything, "n1").Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/notices/n1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockNoticeService)
		app := setupApp(mockService)

		mockService.On("Remove", mock.Anything, "gone").Return(domain.ErrNoticeNotFound).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/notices/gone", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
