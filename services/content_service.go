package services

import (
	"errors"

	"newsroom/models"
	"newsroom/repositories"

	"gorm.io/gorm"
)

// ContentService owns the draft/approval lifecycle for both content
// variants. State machine per item: pending (approved=false) to approved,
// one way, no reject or unpublish path.
type ContentService interface {
	CreateArticle(actor *models.User, req models.CreateArticleRequest) (*models.Article, error)
	GetArticle(id uint) (*models.Article, error)
	UpdateArticle(actor *models.User, id uint, req models.UpdateArticleRequest) (*models.Article, error)
	ApproveArticle(actor *models.User, id uint) (*models.Article, error)
	DeleteArticle(actor *models.User, id uint) error

	CreateNewsletter(actor *models.User, req models.CreateNewsletterRequest) (*models.Newsletter, error)
	GetNewsletter(id uint) (*models.Newsletter, error)
	UpdateNewsletter(actor *models.User, id uint, req models.UpdateNewsletterRequest) (*models.Newsletter, error)
	ApproveNewsletter(actor *models.User, id uint) (*models.Newsletter, error)
	DeleteNewsletter(actor *models.User, id uint) error

	DashboardFor(actor *models.User) (*models.ContentDashboard, error)
}

type contentService struct {
	articleRepo    repositories.ArticleRepository
	newsletterRepo repositories.NewsletterRepository
	publisherRepo  repositories.PublisherRepository
	notifier       NotificationService
}

func NewContentService(
	articleRepo repositories.ArticleRepository,
	newsletterRepo repositories.NewsletterRepository,
	publisherRepo repositories.PublisherRepository,
	notifier NotificationService,
) ContentService {
	return &contentService{
		articleRepo:    articleRepo,
		newsletterRepo: newsletterRepo,
		publisherRepo:  publisherRepo,
		notifier:       notifier,
	}
}

func (s *contentService) CreateArticle(actor *models.User, req models.CreateArticleRequest) (*models.Article, error) {
	if !CanCreateContent(actor) {
		return nil, models.ErrorForbidden{Message: "only journalists can create content"}
	}
	if err := s.checkPublisher(req.PublisherID); err != nil {
		return nil, err
	}

	// Author is the caller, never taken from input. New items always
	// start pending.
	article := &models.Article{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    actor.ID,
		PublisherID: req.PublisherID,
		Approved:    false,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.GetArticle(article.ID)
}

func (s *contentService) GetArticle(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}
	return article, nil
}

func (s *contentService) UpdateArticle(actor *models.User, id uint, req models.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.GetArticle(id)
	if err != nil {
		return nil, err
	}
	if !CanEditOrDelete(actor, article.AuthorID) {
		return nil, models.ErrorForbidden{Message: "you can only edit your own content"}
	}
	if err := s.checkPublisher(req.PublisherID); err != nil {
		return nil, err
	}

	// Editing does not reset the approval latch: an approved item stays
	// approved with the new text.
	article.Title = req.Title
	article.Content = req.Content
	article.PublisherID = req.PublisherID

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	article, err = s.GetArticle(id)
	if err != nil {
		return nil, err
	}

	// Every save of an approved item runs the fanout, edits included.
	if article.Approved {
		s.notifier.ArticleApproved(article)
	}
	return article, nil
}

// ApproveArticle latches approved=true and runs the notification fanout
// after the save. The fanout fires on every approval save, including a
// re-save of an already-approved item.
func (s *contentService) ApproveArticle(actor *models.User, id uint) (*models.Article, error) {
	if !CanApprove(actor) {
		return nil, models.ErrorForbidden{Message: "only editors can approve content"}
	}

	article, err := s.GetArticle(id)
	if err != nil {
		return nil, err
	}

	article.Approved = true
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	article, err = s.GetArticle(id)
	if err != nil {
		return nil, err
	}

	s.notifier.ArticleApproved(article)
	return article, nil
}

func (s *contentService) DeleteArticle(actor *models.User, id uint) error {
	article, err := s.GetArticle(id)
	if err != nil {
		return err
	}
	if !CanEditOrDelete(actor, article.AuthorID) {
		return models.ErrorForbidden{Message: "you can only delete your own content"}
	}
	return s.articleRepo.Delete(id)
}

func (s *contentService) CreateNewsletter(actor *models.User, req models.CreateNewsletterRequest) (*models.Newsletter, error) {
	if !CanCreateContent(actor) {
		return nil, models.ErrorForbidden{Message: "only journalists can create content"}
	}
	if err := s.checkPublisher(req.PublisherID); err != nil {
		return nil, err
	}

	newsletter := &models.Newsletter{
		Title:       req.Title,
		Body:        req.Body,
		AuthorID:    actor.ID,
		PublisherID: req.PublisherID,
		Approved:    false,
	}

	if err := s.newsletterRepo.Create(newsletter); err != nil {
		return nil, err
	}

	return s.GetNewsletter(newsletter.ID)
}

func (s *contentService) GetNewsletter(id uint) (*models.Newsletter, error) {
	newsletter, err := s.newsletterRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "newsletter not found"}
		}
		return nil, err
	}
	return newsletter, nil
}

func (s *contentService) UpdateNewsletter(actor *models.User, id uint, req models.UpdateNewsletterRequest) (*models.Newsletter, error) {
	newsletter, err := s.GetNewsletter(id)
	if err != nil {
		return nil, err
	}
	if !CanEditOrDelete(actor, newsletter.AuthorID) {
		return nil, models.ErrorForbidden{Message: "you can only edit your own content"}
	}
	if err := s.checkPublisher(req.PublisherID); err != nil {
		return nil, err
	}

	newsletter.Title = req.Title
	newsletter.Body = req.Body
	newsletter.PublisherID = req.PublisherID

	if err := s.newsletterRepo.Update(newsletter); err != nil {
		return nil, err
	}

	newsletter, err = s.GetNewsletter(id)
	if err != nil {
		return nil, err
	}

	if newsletter.Approved {
		s.notifier.NewsletterApproved(newsletter)
	}
	return newsletter, nil
}

func (s *contentService) ApproveNewsletter(actor *models.User, id uint) (*models.Newsletter, error) {
	if !CanApprove(actor) {
		return nil, models.ErrorForbidden{Message: "only editors can approve content"}
	}

	newsletter, err := s.GetNewsletter(id)
	if err != nil {
		return nil, err
	}

	newsletter.Approved = true
	if err := s.newsletterRepo.Update(newsletter); err != nil {
		return nil, err
	}

	newsletter, err = s.GetNewsletter(id)
	if err != nil {
		return nil, err
	}

	s.notifier.NewsletterApproved(newsletter)
	return newsletter, nil
}

func (s *contentService) DeleteNewsletter(actor *models.User, id uint) error {
	newsletter, err := s.GetNewsletter(id)
	if err != nil {
		return err
	}
	if !CanEditOrDelete(actor, newsletter.AuthorID) {
		return models.ErrorForbidden{Message: "you can only delete your own content"}
	}
	return s.newsletterRepo.Delete(id)
}

// DashboardFor builds the pending/approved split for the journalist,
// editor and publisher dashboards. Reader dashboards come from the
// subscription service instead.
func (s *contentService) DashboardFor(actor *models.User) (*models.ContentDashboard, error) {
	switch actor.Role {
	case models.RoleJournalist:
		return s.dashboard(
			func(approved bool) ([]models.Article, error) { return s.articleRepo.ListByAuthor(actor.ID, approved) },
			func(approved bool) ([]models.Newsletter, error) {
				return s.newsletterRepo.ListByAuthor(actor.ID, approved)
			},
		)
	case models.RoleEditor:
		return s.dashboard(s.articleRepo.ListByApproval, s.newsletterRepo.ListByApproval)
	case models.RolePublisher:
		publisher, err := s.publisherRepo.GetByName(actor.Username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "publisher not found"}
			}
			return nil, err
		}
		return s.dashboard(
			func(approved bool) ([]models.Article, error) {
				return s.articleRepo.ListByPublisher(publisher.ID, approved)
			},
			func(approved bool) ([]models.Newsletter, error) {
				return s.newsletterRepo.ListByPublisher(publisher.ID, approved)
			},
		)
	case models.RoleReader:
		return nil, models.ErrorForbidden{Message: "readers use the subscribed feed"}
	}
	return nil, models.ErrorForbidden{Message: "unknown role"}
}

func (s *contentService) dashboard(
	articles func(approved bool) ([]models.Article, error),
	newsletters func(approved bool) ([]models.Newsletter, error),
) (*models.ContentDashboard, error) {
	dashboard := &models.ContentDashboard{}
	var err error

	if dashboard.PendingArticles, err = articles(false); err != nil {
		return nil, err
	}
	if dashboard.ApprovedArticles, err = articles(true); err != nil {
		return nil, err
	}
	if dashboard.PendingNewsletters, err = newsletters(false); err != nil {
		return nil, err
	}
	if dashboard.ApprovedNewsletters, err = newsletters(true); err != nil {
		return nil, err
	}
	return dashboard, nil
}

func (s *contentService) checkPublisher(publisherID *uint) error {
	if publisherID == nil {
		return nil
	}
	if _, err := s.publisherRepo.GetByID(*publisherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorValidation{Message: "publisher does not exist"}
		}
		return err
	}
	return nil
}
