package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/pkg/bind"
	"github.com/shashiranjanraj/goldenaura/pkg/middleware"
	"github.com/shashiranjanraj/goldenaura/pkg/response"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController() *CartController {
	return &CartController{cart: services.NewCartService()}
}

func requireUser(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
	}
	return id, ok
}

// Show returns the caller's cart with derived totals.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	cart, err := c.cart.Get(userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, cart)
}

type addItemInput struct {
	ProductID uint `json:"product_id" validate:"required,gte=1"`
	Quantity  int  `json:"quantity"`
}

// Add merges one item into the cart (quantity coerced to ≥1).
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var in addItemInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	cart, err := c.cart.Add(userID, in.ProductID, in.Quantity)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, cart)
}

type replaceInput struct {
	Items []services.ReplaceItem `json:"items"`
}

// Replace swaps the server cart for the client's local copy.
func (c *CartController) Replace(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var in replaceInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	cart, err := c.cart.Replace(userID, in.Items)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, cart)
}

// Remove deletes one product from the cart.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	productID, ok := paramID(r, "productID")
	if !ok {
		response.NotFound(w)
		return
	}

	cart, err := c.cart.Remove(userID, productID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, cart)
}

// Clear empties the cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := c.cart.Clear(userID); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]bool{"cleared": true})
}
