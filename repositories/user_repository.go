package repositories

import (
	"newsroom/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	ListJournalists() ([]models.User, error)
	ReassignRole(userID uint, role models.Role) (*models.User, error)
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *userRepository) ListJournalists() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", models.RoleJournalist).Order("username").Find(&users).Error
	return users, err
}

// ReassignRole changes a user's role and applies the purge rules for the
// new role inside one transaction: a reader cannot keep authored content
// or staff affiliations, a journalist cannot keep reader subscriptions.
func (r *userRepository) ReassignRole(userID uint, role models.Role) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		switch role {
		case models.RoleReader:
			if err := tx.Where("author_id = ?", userID).Delete(&models.Article{}).Error; err != nil {
				return err
			}
			if err := tx.Where("author_id = ?", userID).Delete(&models.Newsletter{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM publisher_editors WHERE user_id = ?", userID).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM publisher_journalists WHERE user_id = ?", userID).Error; err != nil {
				return err
			}
		case models.RoleJournalist:
			if err := tx.Exec("DELETE FROM reader_publisher_subscriptions WHERE reader_id = ?", userID).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM reader_journalist_subscriptions WHERE reader_id = ?", userID).Error; err != nil {
				return err
			}
		case models.RolePublisher:
			publisher := models.Publisher{Name: user.Username}
			if err := tx.Where("name = ?", user.Username).FirstOrCreate(&publisher).Error; err != nil {
				return err
			}
		}

		user.Role = role
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the account and cascades to authored content.
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&models.Article{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Newsletter{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM reader_publisher_subscriptions WHERE reader_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM reader_journalist_subscriptions WHERE reader_id = ? OR journalist_id = ?", id, id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM publisher_editors WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM publisher_journalists WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
