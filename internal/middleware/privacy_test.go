package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestNoStore(t *testing.T) {
	app := fiber.New()
	app.Post("/chat", NoStore, func(c fiber.Ctx) error {
		return c.SendString("reply")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/chat", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	tests := map[string]string{
		"Cache-Control":   "no-store",
		"Pragma":          "no-cache",
		"Referrer-Policy": "no-referrer",
	}
	for header, want := range tests {
		if got := resp.Header.Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}
