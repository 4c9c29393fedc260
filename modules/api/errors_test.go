package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogdomain "github.com/example/securecam-store/domain/catalog"
	orderdomain "github.com/example/securecam-store/domain/order"
	"github.com/example/securecam-store/modules/auth"
	"github.com/example/securecam-store/modules/cart"
	"github.com/gofiber/fiber/v2"
)

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"product not found", catalogdomain.ErrNotFound, http.StatusNotFound},
		{"order not found", orderdomain.ErrNotFound, http.StatusNotFound},
		{"cart session not found", cart.ErrSessionNotFound, http.StatusNotFound},
		{"invalid transition", orderdomain.ErrInvalidTransition, http.StatusConflict},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid quantity", cart.ErrInvalidQuantity, http.StatusBadRequest},
		{"empty cart", cart.ErrEmptyCart, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{DisableStartupMessage: true})
			app.Get("/boom", func(c *fiber.Ctx) error {
				return respondError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestRespondError_ValidationFieldMap(t *testing.T) {
	verrs := catalogdomain.ValidationErrors{
		"name":  "Name is required",
		"price": "Price must be a positive number",
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, verrs)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}

	var body ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Fields["name"] != "Name is required" {
		t.Errorf("fields[name] = %q, want %q", body.Fields["name"], "Name is required")
	}
	if body.Fields["price"] != "Price must be a positive number" {
		t.Errorf("fields[price] = %q, want %q", body.Fields["price"], "Price must be a positive number")
	}
}
