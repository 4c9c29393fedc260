package api

import (
	"github.com/example/securecam-store/modules/catalog"
	"github.com/example/securecam-store/modules/directory"
	"github.com/example/securecam-store/modules/order"
	"github.com/gofiber/fiber/v2"
)

// Admin console handlers. All routes here sit behind AuthMiddleware and
// RequireAdmin.

// CreateProduct handles POST /api/v1/admin/products.
func (h *Handlers) CreateProduct(c *fiber.Ctx) error {
	var req catalog.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	product, err := h.catalog.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct handles PUT /api/v1/admin/products/:id.
func (h *Handlers) UpdateProduct(c *fiber.Ctx) error {
	var req catalog.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	product, err := h.catalog.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// DeleteProduct handles DELETE /api/v1/admin/products/:id.
func (h *Handlers) DeleteProduct(c *fiber.Ctx) error {
	if err := h.catalog.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListOrders handles GET /api/v1/admin/orders.
func (h *Handlers) ListOrders(c *fiber.Ctx) error {
	orders, err := h.orders.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"orders": orders,
		"total":  len(orders),
	})
}

// GetOrder handles GET /api/v1/admin/orders/:id.
func (h *Handlers) GetOrder(c *fiber.Ctx) error {
	found, err := h.orders.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(found)
}

// CreateOrder handles POST /api/v1/admin/orders.
func (h *Handlers) CreateOrder(c *fiber.Ctx) error {
	var req order.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.CustomerID == "" {
		return badRequest(c, "customer_id is required")
	}

	created, err := h.orders.Create(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// ManageOrder handles PUT /api/v1/admin/orders/:id. One payload carries
// any combination of status change, technician assignment, installation
// details and customer feedback.
func (h *Handlers) ManageOrder(c *fiber.Ctx) error {
	var req order.ManageOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := h.orders.Manage(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}

// ListTechnicians handles GET /api/v1/admin/technicians.
func (h *Handlers) ListTechnicians(c *fiber.Ctx) error {
	technicians, err := h.directory.ListTechnicians(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"technicians": technicians,
		"total":       len(technicians),
	})
}

// CreateTechnician handles POST /api/v1/admin/technicians.
func (h *Handlers) CreateTechnician(c *fiber.Ctx) error {
	var req directory.CreateTechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	technician, err := h.directory.CreateTechnician(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(technician)
}

// UpdateTechnician handles PUT /api/v1/admin/technicians/:id.
func (h *Handlers) UpdateTechnician(c *fiber.Ctx) error {
	var req directory.UpdateTechnicianRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	technician, err := h.directory.UpdateTechnician(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(technician)
}

// DeleteTechnician handles DELETE /api/v1/admin/technicians/:id.
func (h *Handlers) DeleteTechnician(c *fiber.Ctx) error {
	if err := h.directory.DeleteTechnician(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCustomers handles GET /api/v1/admin/customers.
func (h *Handlers) ListCustomers(c *fiber.Ctx) error {
	customers, err := h.directory.ListCustomers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"customers": customers,
		"total":     len(customers),
	})
}

// CustomerOrders handles GET /api/v1/admin/customers/:id/orders.
func (h *Handlers) CustomerOrders(c *fiber.Ctx) error {
	customerID := c.Params("id")
	if _, err := h.directory.GetUser(c.UserContext(), customerID); err != nil {
		return respondError(c, err)
	}

	orders, err := h.orders.ListByCustomer(c.UserContext(), customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"customer_id": customerID,
		"orders":      orders,
		"total":       len(orders),
	})
}

// ListCoupons handles GET /api/v1/admin/coupons.
func (h *Handlers) ListCoupons(c *fiber.Ctx) error {
	coupons, err := h.directory.ListCoupons(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"coupons": coupons,
		"total":   len(coupons),
	})
}

// Dashboard handles GET /api/v1/admin/dashboard.
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	summary, err := h.dashboard.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// DashboardActivity handles GET /api/v1/admin/dashboard/activity.
func (h *Handlers) DashboardActivity(c *fiber.Ctx) error {
	activity := h.dashboard.RecentActivity(c.UserContext())
	return c.JSON(fiber.Map{
		"activity": activity,
		"total":    len(activity),
	})
}
