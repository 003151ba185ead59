package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/pkg/bind"
	"github.com/shashiranjanraj/goldenaura/pkg/crypt"
	"github.com/shashiranjanraj/goldenaura/pkg/middleware"
	"github.com/shashiranjanraj/goldenaura/pkg/response"
)

// trackClaim is the payload sealed inside a guest tracking token.
// Possession of a valid token authorises reading that one order.
type trackClaim struct {
	OrderID uint `json:"order_id"`
}

// TrackToken seals an order id into an opaque token handed to guest
// buyers, who have no account to list orders under.
func TrackToken(orderID uint) (string, error) {
	return crypt.EncryptJSON(trackClaim{OrderID: orderID})
}

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{orders: services.NewOrderService()}
}

// Mine lists the caller's orders, newest first.
func (c *OrderController) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	orders, err := c.orders.ListMine(userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, orders)
}

// Index lists all orders with an optional status filter (admin).
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.ListAll(r.URL.Query().Get("status"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, orders)
}

// Show returns one order to its owner or an admin.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}
	userID, _ := middleware.UserIDFromCtx(r)

	order, err := c.orders.Get(id, userID, middleware.IsAdmin(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, order)
}

// Track returns a guest order via its tracking token. The token was
// issued at checkout, so decrypting it successfully is the authz.
func (c *OrderController) Track(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.Error(w, http.StatusBadRequest, "missing token")
		return
	}

	var claim trackClaim
	if err := crypt.DecryptJSON(token, &claim); err != nil {
		response.NotFound(w)
		return
	}

	order, err := c.orders.Get(claim.OrderID, 0, true)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, order)
}

type statusInput struct {
	Status string `json:"status" validate:"required,in=pending,paid,processing,shipped,delivered,cancelled"`
}

// UpdateStatus moves an order along the lifecycle (admin).
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	var in statusInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.SetStatus(id, in.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, order)
}

// Destroy removes an order (admin).
func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.orders.Delete(id); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]bool{"deleted": true})
}
