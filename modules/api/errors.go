package api

import (
	"errors"

	catalogdomain "github.com/example/securecam-store/domain/catalog"
	directorydomain "github.com/example/securecam-store/domain/directory"
	orderdomain "github.com/example/securecam-store/domain/order"
	"github.com/example/securecam-store/modules/auth"
	"github.com/example/securecam-store/modules/cart"
	"github.com/example/securecam-store/modules/directory"
	"github.com/example/securecam-store/modules/order"
	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto HTTP status codes: missing
// records to 404, bad input to 400, invalid status transitions to 409,
// credential failures to 401. Anything unrecognized bubbles up to the
// global error handler as a 500.
func respondError(c *fiber.Ctx, err error) error {
	var verrs catalogdomain.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:  "validation failed",
			Fields: verrs,
		})
	}

	switch {
	case errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, orderdomain.ErrNotFound),
		errors.Is(err, directorydomain.ErrUserNotFound),
		errors.Is(err, directorydomain.ErrTechnicianNotFound),
		errors.Is(err, directorydomain.ErrCouponNotFound),
		errors.Is(err, cart.ErrSessionNotFound),
		errors.Is(err, cart.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: err.Error(),
		})

	case errors.Is(err, orderdomain.ErrInvalidTransition),
		errors.Is(err, directorydomain.ErrUserExists):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error: err.Error(),
		})

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error: err.Error(),
		})

	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, order.ErrNoItems),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, directory.ErrTechnicianNameRequired),
		errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrPasswordTooLong),
		errors.Is(err, auth.ErrNameRequired):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	return err
}

// badRequest replies with a 400 and a plain message.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad request",
		Message: message,
	})
}
