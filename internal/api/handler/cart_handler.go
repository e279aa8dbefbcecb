package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mi-ecommerce/marketplace-api/internal/api/metrics"
	"github.com/mi-ecommerce/marketplace-api/internal/core/ports"
)

// CartHandler handles HTTP requests for carts. The :id route parameter is the
// owning user's id; only that user or an admin may access the cart.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Get handles GET /carts/:id.
//
// @Summary      Get a user's cart
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Owner user id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /carts/{id} [get]
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := requireSelfOrAdmin(c, userID); err != nil {
		return err
	}

	lines, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "cart detail", lines)
}

// Update handles PUT /carts/:id — replaces the cart's item set.
//
// @Summary      Replace a user's cart items
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Owner user id"
// @Param        body  body      updateCartRequest  true  "New item set"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /carts/{id} [put]
func (h *CartHandler) Update(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := requireSelfOrAdmin(c, userID); err != nil {
		return err
	}

	var req updateCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.CartItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.CartItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	lines, err := h.service.Update(c.Request().Context(), userID, items)
	if err != nil {
		return err
	}

	metrics.CartUpdatesTotal.Inc()
	return respond(c, http.StatusOK, "cart updated successfully", lines)
}
