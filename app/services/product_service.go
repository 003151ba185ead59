package services

import (
	"errors"
	"strings"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/repositories"
	"github.com/shashiranjanraj/goldenaura/pkg/orm"
	"gorm.io/gorm"
)

// ProductService fronts the catalogue for both storefront reads and
// admin writes.
type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{products: repositories.NewProductRepository()}
}

// List returns one catalogue page.
func (s *ProductService) List(f repositories.ProductFilter) ([]models.Product, orm.Pagination, error) {
	return s.products.List(f)
}

// Get loads one product with images and reviews.
func (s *ProductService) Get(id uint) (models.Product, error) {
	p, err := s.products.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return p, ErrNotFound
	}
	return p, err
}

// Featured returns the newest arrivals for the storefront landing page.
func (s *ProductService) Featured(limit int) ([]models.Product, error) {
	if limit < 1 || limit > 24 {
		limit = 8
	}
	return s.products.Featured(limit)
}

// ByIDs loads products in the given order, skipping ids that no longer
// exist.
func (s *ProductService) ByIDs(ids []uint) ([]models.Product, error) {
	return s.products.FindByIDs(ids)
}

// Create validates and persists a new product.
func (s *ProductService) Create(p *models.Product) error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" || p.Price < 0 {
		return ErrInvalidInput
	}
	return s.products.Create(p)
}

// Update persists edits to an existing product.
func (s *ProductService) Update(id uint, apply func(*models.Product)) (models.Product, error) {
	p, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return p, ErrNotFound
		}
		return p, err
	}

	apply(&p)
	return p, s.products.Update(&p)
}

// Delete removes a product from the catalogue. Existing orders keep
// their snapshots; nothing is rewritten.
func (s *ProductService) Delete(id uint) error {
	affected, err := s.products.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachImage records an uploaded image against the product.
func (s *ProductService) AttachImage(productID uint, url, key string) (models.ProductImage, error) {
	if _, err := s.products.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ProductImage{}, ErrNotFound
		}
		return models.ProductImage{}, err
	}

	img := models.ProductImage{ProductID: productID, URL: url, Key: key}
	return img, s.products.AddImage(&img)
}

// Review adds a customer review; rating must be 1–5.
func (s *ProductService) Review(productID, userID uint, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidInput
	}
	if _, err := s.products.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.products.AddReview(&models.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	})
}
