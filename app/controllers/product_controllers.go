package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/repositories"
	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/pkg/bind"
	"github.com/shashiranjanraj/goldenaura/pkg/collection"
	"github.com/shashiranjanraj/goldenaura/pkg/logger"
	"github.com/shashiranjanraj/goldenaura/pkg/response"
	"github.com/shashiranjanraj/goldenaura/pkg/session"
	"github.com/shashiranjanraj/goldenaura/pkg/storage"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{products: services.NewProductService()}
}

// Index lists the catalogue with optional category/type/search filters.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repositories.ProductFilter{
		Category: q.Get("category"),
		Type:     q.Get("type"),
		Search:   q.Get("search"),
		Page:     intQuery(r, "page", 1),
		Limit:    intQuery(r, "limit", 20),
	}

	products, pagination, err := c.products.List(filter)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Paginated(w, products, pagination)
}

// Featured returns the newest arrivals for the landing page.
func (c *ProductController) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.Featured(intQuery(r, "limit", 8))
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{"products": products})
}

// Show returns a single product with images and reviews, and remembers
// the visit in the browsing session.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	product, err := c.products.Get(id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	rememberViewed(w, r, id)
	response.Success(w, product)
}

// Recent returns the products the session viewed most recently.
func (c *ProductController) Recent(w http.ResponseWriter, r *http.Request) {
	ids := viewedIDs(session.FromCtx(r))
	products, err := c.products.ByIDs(ids)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]interface{}{"products": products})
}

const (
	recentKey = "recently_viewed"
	recentMax = 8
)

// viewedIDs reads the recently-viewed list out of the session. Values
// round-trip through JSON, so numbers come back as float64.
func viewedIDs(sess *session.Session) []uint {
	v, ok := sess.Get(recentKey)
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []uint:
		return list
	case []interface{}:
		ids := make([]uint, 0, len(list))
		for _, item := range list {
			if f, ok := item.(float64); ok && f > 0 {
				ids = append(ids, uint(f))
			}
		}
		return ids
	}
	return nil
}

func rememberViewed(w http.ResponseWriter, r *http.Request, id uint) {
	sess := session.FromCtx(r)
	prev := collection.Filter(viewedIDs(sess), func(p uint) bool { return p != id })
	ids := append([]uint{id}, collection.Take(prev, recentMax-1)...)
	sess.Set(recentKey, ids)
	if err := sess.Save(w); err != nil {
		logger.WithCtx(r.Context()).Warn("session save failed", "error", err)
	}
}

type productInput struct {
	Title       string  `json:"title" validate:"required,min=2,max=255"`
	Type        string  `json:"type" validate:"nullable,in=Attar,Spray,Solid Perfume,Perfume Candle"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	BrandName   string  `json:"brand_name"`
	BrandOrigin string  `json:"brand_origin"`
}

func (in productInput) toModel() models.Product {
	p := models.Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		BrandName:   in.BrandName,
	}
	if in.Type != "" {
		p.Type = in.Type
	}
	if in.Category != "" {
		p.Category = in.Category
	}
	if in.BrandOrigin != "" {
		p.BrandOrigin = in.BrandOrigin
	}
	return p
}

// Store creates a product (admin).
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in productInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product := in.toModel()
	if err := c.products.Create(&product); err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, product)
}

// Update edits a product (admin).
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	var in productInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.products.Update(id, func(p *models.Product) {
		p.Title = in.Title
		if in.Type != "" {
			p.Type = in.Type
		}
		p.Description = in.Description
		if in.Category != "" {
			p.Category = in.Category
		}
		p.Price = in.Price
		p.Stock = in.Stock
		p.BrandName = in.BrandName
		if in.BrandOrigin != "" {
			p.BrandOrigin = in.BrandOrigin
		}
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, product)
}

// Destroy removes a product (admin). Existing order snapshots are
// untouched.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.products.Delete(id); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]bool{"deleted": true})
}

// UploadImage stores one product image on the configured disk (admin).
func (c *ProductController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	key := fmt.Sprintf("products/%d/%d%s", id, time.Now().UnixNano(), filepath.Ext(header.Filename))
	url, err := storage.Disk().Put(r.Context(), key, file)
	if err != nil {
		respondError(w, r, err)
		return
	}

	img, err := c.products.AttachImage(id, url, key)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, img)
}

type reviewInput struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"nullable,max=2000"`
}

// Review adds a customer review to a product.
func (c *ProductController) Review(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := paramID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	var in reviewInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.products.Review(id, userID, in.Rating, in.Comment); err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, map[string]bool{"reviewed": true})
}
