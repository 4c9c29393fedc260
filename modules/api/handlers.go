package api

import (
	"github.com/example/securecam-store/modules/auth"
	"github.com/example/securecam-store/modules/cart"
	"github.com/example/securecam-store/modules/catalog"
	"github.com/example/securecam-store/modules/dashboard"
	"github.com/example/securecam-store/modules/directory"
	"github.com/example/securecam-store/modules/order"
	"github.com/example/securecam-store/modules/support"
	"github.com/gofiber/fiber/v2"
)

// Handlers bundles the services behind the HTTP routes.
type Handlers struct {
	catalog   *catalog.Service
	directory *directory.Service
	orders    *order.Service
	carts     *cart.Service
	auth      *auth.Service
	dashboard *dashboard.Service
	support   *support.Service
}

// NewHandlers creates a new handlers instance.
func NewHandlers(
	catalogSvc *catalog.Service,
	directorySvc *directory.Service,
	orderSvc *order.Service,
	cartSvc *cart.Service,
	authSvc *auth.Service,
	dashboardSvc *dashboard.Service,
	supportSvc *support.Service,
) *Handlers {
	return &Handlers{
		catalog:   catalogSvc,
		directory: directorySvc,
		orders:    orderSvc,
		carts:     cartSvc,
		auth:      authSvc,
		dashboard: dashboardSvc,
		support:   supportSvc,
	}
}

// HealthCheck handles GET /health.
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "securecam-store",
	})
}

// Storefront

// ListProducts handles GET /api/v1/products.
func (h *Handlers) ListProducts(c *fiber.Ctx) error {
	products, err := h.catalog.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"products": products,
		"total":    len(products),
	})
}

// GetProduct handles GET /api/v1/products/:id.
func (h *Handlers) GetProduct(c *fiber.Ctx) error {
	product, err := h.catalog.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// ValidateCoupon handles GET /api/v1/coupons/validate?code=.
func (h *Handlers) ValidateCoupon(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return badRequest(c, "code query parameter is required")
	}

	validation, err := h.directory.ValidateCoupon(c.UserContext(), code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(validation)
}

// TrackOrder handles GET /api/v1/orders/:id/tracking.
func (h *Handlers) TrackOrder(c *fiber.Ctx) error {
	info, err := h.orders.Track(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(info)
}

// ListFAQs handles GET /api/v1/support/faqs.
func (h *Handlers) ListFAQs(c *fiber.Ctx) error {
	faqs := h.support.FAQs()
	return c.JSON(fiber.Map{
		"faqs":  faqs,
		"total": len(faqs),
	})
}

// Cart

// CreateCart handles POST /api/v1/carts.
func (h *Handlers) CreateCart(c *fiber.Ctx) error {
	created := h.carts.CreateSession(c.UserContext())
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetCart handles GET /api/v1/carts/:sid.
func (h *Handlers) GetCart(c *fiber.Ctx) error {
	found, err := h.carts.Get(c.UserContext(), c.Params("sid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(found)
}

// AddCartItem handles POST /api/v1/carts/:sid/items.
func (h *Handlers) AddCartItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.ProductID == "" {
		return badRequest(c, "product_id is required")
	}

	updated, err := h.carts.AddItem(c.UserContext(), c.Params("sid"), req.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// UpdateCartItem handles PUT /api/v1/carts/:sid/items/:pid.
func (h *Handlers) UpdateCartItem(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.carts.UpdateQuantity(c.UserContext(), c.Params("sid"), c.Params("pid"), req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// RemoveCartItem handles DELETE /api/v1/carts/:sid/items/:pid.
func (h *Handlers) RemoveCartItem(c *fiber.Ctx) error {
	updated, err := h.carts.RemoveItem(c.UserContext(), c.Params("sid"), c.Params("pid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// Checkout handles POST /api/v1/carts/:sid/checkout.
func (h *Handlers) Checkout(c *fiber.Ctx) error {
	result, err := h.carts.Checkout(c.UserContext(), c.Params("sid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Auth

// Register handles POST /api/v1/auth/register.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req auth.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.auth.Register(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /api/v1/auth/login.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	pair, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pair)
}

// Refresh handles POST /api/v1/auth/refresh.
func (h *Handlers) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.RefreshToken == "" {
		return badRequest(c, "refresh_token is required")
	}

	pair, err := h.auth.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pair)
}
