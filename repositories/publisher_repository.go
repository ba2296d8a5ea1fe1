package repositories

import (
	"newsroom/models"

	"gorm.io/gorm"
)

type PublisherRepository interface {
	GetByID(id uint) (*models.Publisher, error)
	GetByName(name string) (*models.Publisher, error)
	GetOrCreateByName(name string) (*models.Publisher, error)
	GetAll() ([]models.Publisher, error)
	Delete(id uint) error
	AddEditor(publisherID uint, user *models.User) error
	RemoveEditor(publisherID uint, user *models.User) error
	AddJournalist(publisherID uint, user *models.User) error
	RemoveJournalist(publisherID uint, user *models.User) error
}

type publisherRepository struct {
	db *gorm.DB
}

func NewPublisherRepository(db *gorm.DB) PublisherRepository {
	return &publisherRepository{db: db}
}

func (r *publisherRepository) GetByID(id uint) (*models.Publisher, error) {
	var publisher models.Publisher
	err := r.db.First(&publisher, id).Error
	return &publisher, err
}

func (r *publisherRepository) GetByName(name string) (*models.Publisher, error) {
	var publisher models.Publisher
	err := r.db.Where("name = ?", name).First(&publisher).Error
	return &publisher, err
}

func (r *publisherRepository) GetOrCreateByName(name string) (*models.Publisher, error) {
	publisher := models.Publisher{Name: name}
	err := r.db.Where("name = ?", name).FirstOrCreate(&publisher).Error
	return &publisher, err
}

func (r *publisherRepository) GetAll() ([]models.Publisher, error) {
	var publishers []models.Publisher
	err := r.db.Order("name").Find(&publishers).Error
	return publishers, err
}

// Delete removes the publisher. Content attributed to it keeps existing
// with a cleared publisher reference; subscription edges and staff
// affiliations are removed with the row.
func (r *publisherRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Article{}).Where("publisher_id = ?", id).Update("publisher_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Newsletter{}).Where("publisher_id = ?", id).Update("publisher_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM reader_publisher_subscriptions WHERE publisher_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM publisher_editors WHERE publisher_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM publisher_journalists WHERE publisher_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Publisher{}, id).Error
	})
}

func (r *publisherRepository) AddEditor(publisherID uint, user *models.User) error {
	return r.db.Model(&models.Publisher{ID: publisherID}).Association("Editors").Append(user)
}

func (r *publisherRepository) RemoveEditor(publisherID uint, user *models.User) error {
	return r.db.Model(&models.Publisher{ID: publisherID}).Association("Editors").Delete(user)
}

func (r *publisherRepository) AddJournalist(publisherID uint, user *models.User) error {
	return r.db.Model(&models.Publisher{ID: publisherID}).Association("Journalists").Append(user)
}

func (r *publisherRepository) RemoveJournalist(publisherID uint, user *models.User) error {
	return r.db.Model(&models.Publisher{ID: publisherID}).Association("Journalists").Delete(user)
}
