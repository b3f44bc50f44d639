package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Rodger11/geo-reconexion/internal/observability"
	"github.com/Rodger11/geo-reconexion/pkg/util"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestApp() *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	app.Get("/forbidden", func(c *fiber.Ctx) error {
		return util.NewForbidden("Usuario inactivo")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("connection refused")
	})
	return app
}

func decodeError(t *testing.T, body io.Reader) errorBody {
	t.Helper()
	var decoded errorBody
	if err := json.NewDecoder(body).Decode(&decoded); err != nil {
		t.Fatalf("decoding error body: %v", err)
	}
	return decoded
}

func TestUnmatchedRouteRendersNotFoundCode(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/no-such-route", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if body := decodeError(t, resp.Body); body.Error.Code != "NOT_FOUND" {
		t.Fatalf("expected code NOT_FOUND, got %q", body.Error.Code)
	}
}

func TestDomainErrorRendersStatusAndCode(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/forbidden", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 403 {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	body := decodeError(t, resp.Body)
	if body.Error.Code != "FORBIDDEN" {
		t.Errorf("expected code FORBIDDEN, got %q", body.Error.Code)
	}
	if body.Error.Message != "Usuario inactivo" {
		t.Errorf("unexpected message %q", body.Error.Message)
	}
}

func TestUntypedErrorRendersGenericInternal(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 500 {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	body := decodeError(t, resp.Body)
	if body.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("expected code INTERNAL_ERROR, got %q", body.Error.Code)
	}
	if body.Error.Message != "internal server error" {
		t.Errorf("cause must not leak to the client, got %q", body.Error.Message)
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{400, "BAD_REQUEST"},
		{404, "NOT_FOUND"},
		{405, "METHOD_NOT_ALLOWED"},
		{999, "ERROR"},
	}

	for _, tt := range tests {
		if got := statusCode(tt.status); got != tt.want {
			t.Errorf("statusCode(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
