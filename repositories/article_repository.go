package repositories

import (
	"newsroom/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	ListByApproval(approved bool) ([]models.Article, error)
	ListByAuthor(authorID uint, approved bool) ([]models.Article, error)
	ListByPublisher(publisherID uint, approved bool) ([]models.Article, error)
	ListApprovedBySources(journalistIDs, publisherIDs []uint) ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").Preload("Publisher").First(&article, id).Error
	return &article, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

func (r *articleRepository) ListByApproval(approved bool) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Publisher").
		Where("approved = ?", approved).
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListByAuthor(authorID uint, approved bool) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Publisher").
		Where("author_id = ? AND approved = ?", authorID, approved).
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListByPublisher(publisherID uint, approved bool) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Publisher").
		Where("publisher_id = ? AND approved = ?", publisherID, approved).
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

// ListApprovedBySources returns approved articles whose author is one of
// the given journalists or whose publisher is one of the given
// publishers, newest first.
func (r *articleRepository) ListApprovedBySources(journalistIDs, publisherIDs []uint) ([]models.Article, error) {
	articles := []models.Article{}
	if len(journalistIDs) == 0 && len(publisherIDs) == 0 {
		return articles, nil
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

	err := query.Order("created_at desc").Find(&articles).Error
	return articles, err
}
