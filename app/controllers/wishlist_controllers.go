package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/pkg/bind"
	"github.com/shashiranjanraj/goldenaura/pkg/response"
)

type WishlistController struct {
	wishlist *services.WishlistService
}

func NewWishlistController() *WishlistController {
	return &WishlistController{wishlist: services.NewWishlistService()}
}

// Index returns the caller's wishlist.
func (c *WishlistController) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := c.wishlist.List(userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{"wishlist": items})
}

type wishInput struct {
	ProductID uint `json:"product_id" validate:"required,gte=1"`
}

// Add marks a product as wished; duplicates are a no-op.
func (c *WishlistController) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var in wishInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	items, err := c.wishlist.Add(userID, in.ProductID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, map[string]interface{}{"wishlist": items})
}

// Remove unmarks a product.
func (c *WishlistController) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	productID, ok := paramID(r, "productID")
	if !ok {
		response.NotFound(w)
		return
	}

	items, err := c.wishlist.Remove(userID, productID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{"wishlist": items})
}

// Check reports whether one product is wished.
func (c *WishlistController) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	productID, ok := paramID(r, "productID")
	if !ok {
		response.NotFound(w)
		return
	}

	wished, err := c.wishlist.Has(userID, productID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]bool{"wished": wished})
}
