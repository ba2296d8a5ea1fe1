package services

import (
	"fmt"
	"log"

	"newsroom/models"
	"newsroom/repositories"
)

// socialPostLimit is the platform's per-post character limit.
const socialPostLimit = 280

// Mailer sends one message to the given recipients.
type Mailer interface {
	Send(subject, body string, to []string) error
}

// SocialPublisher posts to the external social platform, best effort.
type SocialPublisher interface {
	Post(text string) error
}

// NotificationService is the approval fanout pipeline. It runs
// synchronously after an approval save commits and has no transactional
// coupling to it: every failure here is logged and swallowed, the
// approval stands either way.
type NotificationService interface {
	ArticleApproved(article *models.Article)
	NewsletterApproved(newsletter *models.Newsletter)
}

type notificationService struct {
	subscriptionRepo repositories.SubscriptionRepository
	mailer           Mailer
	social           SocialPublisher
}

func NewNotificationService(subscriptionRepo repositories.SubscriptionRepository, mailer Mailer, social SocialPublisher) NotificationService {
	return &notificationService{
		subscriptionRepo: subscriptionRepo,
		mailer:           mailer,
		social:           social,
	}
}

func (s *notificationService) ArticleApproved(article *models.Article) {
	recipients := s.recipients(article.AuthorID, article.PublisherID)

	subject := fmt.Sprintf("New Article: %s", article.Title)
	s.sendToEach(recipients, subject, article.Content)

	// Best-effort social post, articles only.
	if s.social != nil {
		text := fmt.Sprintf("📰 Article from %s: %s\n%s",
			article.Author.Username, article.Title, article.Content)
		if err := s.social.Post(truncateRunes(text, socialPostLimit)); err != nil {
			log.Printf("article %d: social post failed: %v", article.ID, err)
		}
	}
}

func (s *notificationService) NewsletterApproved(newsletter *models.Newsletter) {
	recipients := s.recipients(newsletter.AuthorID, newsletter.PublisherID)

	subject := fmt.Sprintf("📰 Newsletter from %s: %s",
		newsletter.Author.Username, newsletter.Title)
	s.sendToEach(recipients, subject, newsletter.Body)
}

// recipients resolves the fanout set: readers following the author union
// readers subscribed to the publisher, deduplicated by user ID.
func (s *notificationService) recipients(authorID uint, publisherID *uint) []models.User {
	seen := make(map[uint]models.User)

	followers, err := s.subscriptionRepo.FollowersOfJournalist(authorID)
	if err != nil {
		log.Printf("fanout: follower lookup for journalist %d failed: %v", authorID, err)
	}
	for _, reader := range followers {
		seen[reader.ID] = reader
	}

	if publisherID != nil {
		subscribers, err := s.subscriptionRepo.SubscribersOfPublisher(*publisherID)
		if err != nil {
			log.Printf("fanout: subscriber lookup for publisher %d failed: %v", *publisherID, err)
		}
		for _, reader := range subscribers {
			seen[reader.ID] = reader
		}
	}

	recipients := make([]models.User, 0, len(seen))
	for _, reader := range seen {
		recipients = append(recipients, reader)
	}
	return recipients
}

// sendToEach dispatches one email per recipient. A failed send is logged
// and must not abort the remaining sends. Recipients without an email
// address are skipped.
func (s *notificationService) sendToEach(recipients []models.User, subject, body string) {
	for _, reader := range recipients {
		if reader.Email == "" {
			continue
		}
		if err := s.mailer.Send(subject, body, []string{reader.Email}); err != nil {
			log.Printf("fanout: email to %s failed: %v", reader.Email, err)
		}
	}
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
