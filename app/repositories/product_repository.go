package repositories

import (
	"time"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/pkg/orm"
)

// ProductFilter narrows the catalogue listing.
type ProductFilter struct {
	Category string
	Type     string
	Search   string
	Page     int
	Limit    int
}

// ProductRepository handles database operations for the catalogue.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindByID loads a product with its images and reviews.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var p models.Product
	err := orm.DB().Model(&models.Product{}).
		Preload("Images").
		Preload("Reviews").
		Where("id = ?", id).
		First(&p)
	return p, err
}

// List returns one catalogue page matching the filter.
func (r *ProductRepository) List(f ProductFilter) ([]models.Product, orm.Pagination, error) {
	q := orm.DB().Model(&models.Product{}).Preload("Images")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Search != "" {
		q = q.Where("title LIKE ?", "%"+f.Search+"%")
	}

	var products []models.Product
	pagination, err := q.Order("created_at DESC").GetWithPagination(&products, f.Page, f.Limit)
	return products, pagination, err
}

// Featured returns the newest products, served from cache when warm.
func (r *ProductRepository) Featured(limit int) ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Order("created_at DESC").
		Limit(limit).
		Cache("products:featured", 5*time.Minute, &products)
	return products, err
}

// FindByIDs loads products for the given ids, keeping the input order.
func (r *ProductRepository) FindByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Preload("Images").
		Where("id IN ?", ids).
		Get(&products)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	ordered := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// Create persists a new product.
func (r *ProductRepository) Create(p *models.Product) error {
	return orm.DB().Create(p)
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(p *models.Product) error {
	return orm.DB().Save(p)
}

// Delete soft-deletes a product.
func (r *ProductRepository) Delete(id uint) (int64, error) {
	return orm.DB().Exec(
		"UPDATE products SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL", id,
	)
}

// AddImage attaches a stored image to a product.
func (r *ProductRepository) AddImage(img *models.ProductImage) error {
	return orm.DB().Create(img)
}

// AddReview stores a review and refreshes the product's average rating.
func (r *ProductRepository) AddReview(review *models.Review) error {
	return orm.DB().Transaction(func(tx *orm.Query) error {
		if err := tx.Create(review); err != nil {
			return err
		}
		_, err := tx.Exec(
			`UPDATE products SET rating = (
				SELECT AVG(rating) FROM reviews
				WHERE product_id = ? AND deleted_at IS NULL
			) WHERE id = ?`,
			review.ProductID, review.ProductID,
		)
		return err
	})
}

// Count returns the total number of products.
func (r *ProductRepository) Count() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.Product{}).Count(&n)
	return n, err
}
