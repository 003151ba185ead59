package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/pkg/bind"
	"github.com/shashiranjanraj/goldenaura/pkg/response"
)

type StoreController struct {
	store *services.StoreService
}

func NewStoreController() *StoreController {
	return &StoreController{store: services.NewStoreService()}
}

// Show returns the public storefront settings.
func (c *StoreController) Show(w http.ResponseWriter, r *http.Request) {
	settings, err := c.store.Get()
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, settings)
}

type storeInput struct {
	Name         string `json:"name" validate:"nullable,max=255"`
	Tagline      string `json:"tagline"`
	Email        string `json:"email" validate:"nullable,email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	LogoURL      string `json:"logo_url" validate:"nullable,url"`
	Instagram    string `json:"instagram"`
	Facebook     string `json:"facebook"`
	ThemePrimary string `json:"theme_primary"`
}

// Update persists storefront settings edits (admin).
func (c *StoreController) Update(w http.ResponseWriter, r *http.Request) {
	var in storeInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	settings, err := c.store.Update(func(s *models.StoreSettings) {
		if in.Name != "" {
			s.Name = in.Name
		}
		if in.Tagline != "" {
			s.Tagline = in.Tagline
		}
		if in.Email != "" {
			s.Email = in.Email
		}
		if in.Phone != "" {
			s.Phone = in.Phone
		}
		if in.Address != "" {
			s.Address = in.Address
		}
		if in.LogoURL != "" {
			s.LogoURL = in.LogoURL
		}
		if in.Instagram != "" {
			s.Instagram = in.Instagram
		}
		if in.Facebook != "" {
			s.Facebook = in.Facebook
		}
		if in.ThemePrimary != "" {
			s.ThemePrimary = in.ThemePrimary
		}
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, settings)
}
