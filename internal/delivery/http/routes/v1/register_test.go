package v1

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/jwt"
)

// stubDB satisfies the store port with empty result sets so requests can
// travel the full middleware and handler chain without a live database.
type stubDB struct{}

func (stubDB) Ping(context.Context) error { return nil }
func (stubDB) Close() error { return nil }
func (stubDB) SQLDB() *sql.DB { return nil }
func (stubDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, nil
}
func (stubDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return stubRows{}, nil
}
func (stubDB) QueryRow(context.Context, string, ...any) database.Row {
	return stubRow{}
}
func (stubDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("transactions not supported")
}

type stubRows struct{}

func (stubRows) Close() {}
func (stubRows) Next() bool { return false }
func (stubRows) Scan(...any) error { return nil }
func (stubRows) Err() error { return nil }

type stubRow struct{}

func (stubRow) Scan(dest ...any) error {
	for _, d := range dest {
		if n, ok := d.(*int64); ok {
			*n = 0
		}
	}
	return nil
}

func testConfig() config.Config {
	return config.Config{
		JWT: config.JWTConfig{
			AccessSecret:     "access-secret",
			RefreshSecret:    "refresh-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: time.Hour,
		},
	}
}

func newTestApp(t *testing.T, cfg config.Config) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{})
	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	api := app.Group("/api")
	Register(api.Group("/v1"), cfg, stubDB{}, nil, log.New(io.Discard, "", 0))
	return app
}

func TestRegister_PublicJobRoutesNeedNoToken(t *testing.T) {
	app := newTestApp(t, testConfig())

	paths := []string{
		"/api/v1/jobs/search",
		"/api/v1/jobs/filter",
		"/api/v1/jobs/latest",
		"/api/v1/jobs/trending",
		"/api/v1/jobs/suggestions",
		"/api/v1/jobs/top-industries",
	}
	for _, path := range paths {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request error: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("%s: expected 200 without a token, got %d", path, resp.StatusCode)
		}
	}
}

func TestRegister_BlankQuickSearchIsBadRequestNotUnauthorized(t *testing.T) {
	app := newTestApp(t, testConfig())

	req := httptest.NewRequest("GET", "/api/v1/jobs/quick-search?keyword=%20%20", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for a blank keyword, got %d", resp.StatusCode)
	}
}

func TestRegister_ProtectedRoutesRejectMissingToken(t *testing.T) {
	app := newTestApp(t, testConfig())

	paths := []string{
		"/api/v1/jobs/suggested",
		"/api/v1/candidates/search",
	}
	for _, path := range paths {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request error: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without a token, got %d", path, resp.StatusCode)
		}
	}
}

func TestRegister_SuggestedAcceptsValidToken(t *testing.T) {
	cfg := testConfig()
	app := newTestApp(t, cfg)

	svc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	token, err := svc.GenerateAccessToken(uuid.New(), "asha@example.com", "JOB_SEEKER")
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/jobs/suggested", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with a valid token, got %d", resp.StatusCode)
	}
}
