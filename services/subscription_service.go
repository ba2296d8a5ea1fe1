package services

import (
	"errors"

	"newsroom/models"
	"newsroom/repositories"

	"gorm.io/gorm"
)

type SubscriptionService interface {
	SetSubscriptions(actor *models.User, req models.SubscriptionRequest) (*models.SubscriptionResponse, error)
	GetSubscriptions(actor *models.User) (*models.SubscriptionResponse, error)
	SubscribedFeed(actor *models.User) (*models.FeedResponse, error)
	SubscribedArticles(actor *models.User) ([]models.Article, error)
}

type subscriptionService struct {
	userRepo         repositories.UserRepository
	publisherRepo    repositories.PublisherRepository
	subscriptionRepo repositories.SubscriptionRepository
	articleRepo      repositories.ArticleRepository
	newsletterRepo   repositories.NewsletterRepository
}

func NewSubscriptionService(
	userRepo repositories.UserRepository,
	publisherRepo repositories.PublisherRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	articleRepo repositories.ArticleRepository,
	newsletterRepo repositories.NewsletterRepository,
) SubscriptionService {
	return &subscriptionService{
		userRepo:         userRepo,
		publisherRepo:    publisherRepo,
		subscriptionRepo: subscriptionRepo,
		articleRepo:      articleRepo,
		newsletterRepo:   newsletterRepo,
	}
}

// SetSubscriptions replaces both follow relations with the given sets.
// Edges missing from the request are removed, so the notification fanout
// always works off current state.
func (s *subscriptionService) SetSubscriptions(actor *models.User, req models.SubscriptionRequest) (*models.SubscriptionResponse, error) {
	if !CanManageSubscriptions(actor) {
		return nil, models.ErrorForbidden{Message: "only readers can manage subscriptions"}
	}

	publishers := make([]models.Publisher, 0, len(req.PublisherIDs))
	for _, id := range req.PublisherIDs {
		publisher, err := s.publisherRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorValidation{Message: "publisher does not exist"}
			}
			return nil, err
		}
		publishers = append(publishers, *publisher)
	}

	journalists := make([]models.User, 0, len(req.JournalistIDs))
	for _, id := range req.JournalistIDs {
		journalist, err := s.userRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorValidation{Message: "journalist does not exist"}
			}
			return nil, err
		}
		if journalist.Role != models.RoleJournalist {
			return nil, models.ErrorValidation{Message: "can only subscribe to journalists"}
		}
		journalists = append(journalists, *journalist)
	}

	if err := s.subscriptionRepo.Replace(actor, publishers, journalists); err != nil {
		return nil, err
	}

	return &models.SubscriptionResponse{
		Publishers:  publishers,
		Journalists: journalists,
	}, nil
}

func (s *subscriptionService) GetSubscriptions(actor *models.User) (*models.SubscriptionResponse, error) {
	if !CanManageSubscriptions(actor) {
		return nil, models.ErrorForbidden{Message: "only readers can manage subscriptions"}
	}

	publishers, journalists, err := s.subscriptionRepo.GetForReader(actor.ID)
	if err != nil {
		return nil, err
	}
	return &models.SubscriptionResponse{
		Publishers:  publishers,
		Journalists: journalists,
	}, nil
}

// SubscribedFeed returns all approved content from the reader's
// subscribed journalists and publishers, newest first.
func (s *subscriptionService) SubscribedFeed(actor *models.User) (*models.FeedResponse, error) {
	journalistIDs, publisherIDs, err := s.sourceIDs(actor.ID)
	if err != nil {
		return nil, err
	}

	articles, err := s.articleRepo.ListApprovedBySources(journalistIDs, publisherIDs)
	if err != nil {
		return nil, err
	}
	newsletters, err := s.newsletterRepo.ListApprovedBySources(journalistIDs, publisherIDs)
	if err != nil {
		return nil, err
	}

	return &models.FeedResponse{
		Articles:    articles,
		Newsletters: newsletters,
	}, nil
}

// SubscribedArticles backs the read-only feed API. Readers only, anyone
// else gets a forbidden error.
func (s *subscriptionService) SubscribedArticles(actor *models.User) ([]models.Article, error) {
	if actor.Role != models.RoleReader {
		return nil, models.ErrorForbidden{Message: "only readers can access this endpoint"}
	}

	journalistIDs, publisherIDs, err := s.sourceIDs(actor.ID)
	if err != nil {
		return nil, err
	}
	return s.articleRepo.ListApprovedBySources(journalistIDs, publisherIDs)
}

func (s *subscriptionService) sourceIDs(readerID uint) (journalistIDs, publisherIDs []uint, err error) {
	publishers, journalists, err := s.subscriptionRepo.GetForReader(readerID)
	if err != nil {
		return nil, nil, err
	}
	for _, j := range journalists {
		journalistIDs = append(journalistIDs, j.ID)
	}
	for _, p := range publishers {
		publisherIDs = append(publisherIDs, p.ID)
	}
	return journalistIDs, publisherIDs, nil
}
