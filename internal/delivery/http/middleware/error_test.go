package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func newApp(h fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware().Middleware())
	app.Get("/t", h)
	return app
}

func doRequest(t *testing.T, app *fiber.App) (int, map[string]string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.StatusCode, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusNotFound, "Job not found", nil)
	})

	status, body := doRequest(t, app)
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if body["detail"] != "Job not found" {
		t.Fatalf("unexpected detail: %q", body["detail"])
	}
}

func TestErrorMiddleware_GenericErrorExposesMessage(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error {
		return errors.New("socket closed")
	})

	status, body := doRequest(t, app)
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body["detail"] != "socket closed" {
		t.Fatalf("expected fault message exposed, got %q", body["detail"])
	}
}

func TestErrorMiddleware_PanicRecovery(t *testing.T) {
	app := newApp(func(c fiber.Ctx) error {
		panic("boom")
	})

	status, body := doRequest(t, app)
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body["detail"] == "" {
		t.Fatalf("expected a detail message")
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewAppError(fiber.StatusBadRequest, "bad input", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to find the cause")
	}
	if err.Error() != "bad input: root cause" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
