package repositories

import (
	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/pkg/orm"
)

// UserRepository handles database operations for User and Address.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByEmail looks up a user by their email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("email = ?", email).First(&user)
	return user, err
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := orm.DB().Model(&models.User{}).Where("id = ?", id).First(&user)
	return user, err
}

// Create persists a new user record.
func (r *UserRepository) Create(user *models.User) error {
	return orm.DB().Create(user)
}

// Update persists changes to an existing user.
func (r *UserRepository) Update(user *models.User) error {
	return orm.DB().Save(user)
}

// All returns all users with pagination (admin listing).
func (r *UserRepository) All(page, limit int) ([]models.User, orm.Pagination, error) {
	var users []models.User
	pagination, err := orm.DB().Model(&models.User{}).GetWithPagination(&users, page, limit)
	return users, pagination, err
}

// Count returns the total number of users.
func (r *UserRepository) Count() (int64, error) {
	var n int64
	err := orm.DB().Model(&models.User{}).Count(&n)
	return n, err
}

// Addresses returns the user's saved addresses.
func (r *UserRepository) Addresses(userID uint) ([]models.Address, error) {
	var addrs []models.Address
	err := orm.DB().Model(&models.Address{}).Where("user_id = ?", userID).Get(&addrs)
	return addrs, err
}

// AddAddress saves a new address; when it is flagged default, any
// previous default is cleared first.
func (r *UserRepository) AddAddress(addr *models.Address) error {
	return orm.DB().Transaction(func(tx *orm.Query) error {
		if addr.IsDefault {
			if _, err := tx.Exec(
				"UPDATE addresses SET is_default = ? WHERE user_id = ?", false, addr.UserID,
			); err != nil {
				return err
			}
		}
		return tx.Create(addr)
	})
}

// DeleteAddress removes one of the user's addresses.
func (r *UserRepository) DeleteAddress(userID, addressID uint) (int64, error) {
	return orm.DB().Exec(
		"UPDATE addresses SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND user_id = ? AND deleted_at IS NULL",
		addressID, userID,
	)
}
