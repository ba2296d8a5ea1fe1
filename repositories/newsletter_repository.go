package repositories

import (
	"newsroom/models"

	"gorm.io/gorm"
)

type NewsletterRepository interface {
	Create(newsletter *models.Newsletter) error
	GetByID(id uint) (*models.Newsletter, error)
	Update(newsletter *models.Newsletter) error
	Delete(id uint) error
	ListByApproval(approved bool) ([]models.Newsletter, error)
	ListByAuthor(authorID uint, approved bool) ([]models.Newsletter, error)
	ListByPublisher(publisherID uint, approved bool) ([]models.Newsletter, error)
	ListApprovedBySources(journalistIDs, publisherIDs []uint) ([]models.Newsletter, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(newsletter *models.Newsletter) error {
	return r.db.Create(newsletter).Error
}

func (r *newsletterRepository) GetByID(id uint) (*models.Newsletter, error) {
	var newsletter models.Newsletter
	err := r.db.Preload("Author").Preload("Publisher").First(&newsletter, id).Error
	return &newsletter, err
}

func (r *newsletterRepository) Update(newsletter *models.Newsletter) error {
	return r.db.Save(newsletter).Error
}

func (r *newsletterRepository) Delete(id uint) error {
	return r.db.Delete(&models.Newsletter{}, id).Error
}

func (r *newsletterRepository) ListByApproval(approved bool) ([]models.Newsletter, error) {
	var newsletters []models.Newsletter
	err := r.db.Preload("Author").Preload("Publisher").
		Where("approved = ?", approved).
		Order("created_at desc").
		Find(&newsletters).Error
	return newsletters, err
}

func (r *newsletterRepository) ListByAuthor(authorID uint, approved bool) ([]models.Newsletter, error) {
	var newsletters []models.Newsletter
	err := r.db.Preload("Author").Preload("Publisher").
		Where("author_id = ? AND approved = ?", authorID, approved).
		Order("created_at desc").
		Find(&newsletters).Error
	return newsletters, err
}

func (r *newsletterRepository) ListByPublisher(publisherID uint, approved bool) ([]models.Newsletter, error) {
	var newsletters []models.Newsletter
	err := r.db.Preload("Author").Preload("Publisher").
		Where("publisher_id = ? AND approved = ?", publisherID, approved).
		Order("created_at desc").
		Find(&newsletters).Error
	return newsletters, err
}

func (r *newsletterRepository) ListApprovedBySources(journalistIDs, publisherIDs []uint) ([]models.Newsletter, error) {
	newsletters := []models.Newsletter{}
	if len(journalistIDs) == 0 && len(publisherIDs) == 0 {
		return newsletters, nil
	}

	query := r.db.Preload("Author").Preload("Publisher").Where("approved = ?", true)
	switch {
	case len(journalistIDs) > 0 && len(publisherIDs) > 0:
		query = query.Where("author_id IN ? OR publisher_id IN ?", journalistIDs, publisherIDs)
	case len(journalistIDs) > 0:
		query = query.Where("author_id IN ?", journalistIDs)
	default:
		query = query.Where("publisher_id IN ?", publisherIDs)
	}

	err := query.Order("created_at desc").Find(&newsletters).Error
	return newsletters, err
}
