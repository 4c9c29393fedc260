package latency

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func testApp(delay time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(New(delay))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestNew_DelaysResponse(t *testing.T) {
	delay := 50 * time.Millisecond
	app := testApp(delay)

	start := time.Now()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), 5000)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("response returned after %s, want at least %s", elapsed, delay)
	}
}

func TestNew_ZeroDelayPassesThrough(t *testing.T) {
	app := testApp(0)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}
