package services

import (
	"errors"
	"fmt"
	"testing"

	"newsroom/config"
	"newsroom/models"
	"newsroom/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database: the connection pool must see the same
	// store, a bare :memory: DSN gives every connection its own.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

type sentMail struct {
	Subject string
	Body    string
	To      []string
}

type fakeMailer struct {
	sent    []sentMail
	failFor map[string]bool
}

func (f *fakeMailer) Send(subject, body string, to []string) error {
	for _, addr := range to {
		if f.failFor[addr] {
			return errors.New("smtp failure")
		}
	}
	f.sent = append(f.sent, sentMail{Subject: subject, Body: body, To: to})
	return nil
}

func (f *fakeMailer) recipients() []string {
	var all []string
	for _, m := range f.sent {
		all = append(all, m.To...)
	}
	return all
}

type fakeSocial struct {
	posts []string
	err   error
}

func (f *fakeSocial) Post(text string) error {
	if f.err != nil {
		return f.err
	}
	f.posts = append(f.posts, text)
	return nil
}

// fixture bundles the wired services over one test database.
type fixture struct {
	db               *gorm.DB
	userRepo         repositories.UserRepository
	publisherRepo    repositories.PublisherRepository
	articleRepo      repositories.ArticleRepository
	newsletterRepo   repositories.NewsletterRepository
	subscriptionRepo repositories.SubscriptionRepository

	mailer *fakeMailer
	social *fakeSocial

	auth          AuthService
	content       ContentService
	subscriptions SubscriptionService
	publishers    PublisherService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	f := &fixture{
		db:               db,
		userRepo:         repositories.NewUserRepository(db),
		publisherRepo:    repositories.NewPublisherRepository(db),
		articleRepo:      repositories.NewArticleRepository(db),
		newsletterRepo:   repositories.NewNewsletterRepository(db),
		subscriptionRepo: repositories.NewSubscriptionRepository(db),
		mailer:           &fakeMailer{failFor: map[string]bool{}},
		social:           &fakeSocial{},
	}

	notifier := NewNotificationService(f.subscriptionRepo, f.mailer, f.social)
	f.auth = NewAuthService(f.userRepo, f.publisherRepo)
	f.content = NewContentService(f.articleRepo, f.newsletterRepo, f.publisherRepo, notifier)
	f.subscriptions = NewSubscriptionService(f.userRepo, f.publisherRepo, f.subscriptionRepo, f.articleRepo, f.newsletterRepo)
	f.publishers = NewPublisherService(f.publisherRepo, f.userRepo)
	return f
}

func (f *fixture) createUser(t *testing.T, username string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, f.userRepo.Create(user))
	return user
}

func (f *fixture) createPublisher(t *testing.T, name string) *models.Publisher {
	t.Helper()
	publisher, err := f.publisherRepo.GetOrCreateByName(name)
	require.NoError(t, err)
	return publisher
}

func (f *fixture) subscribe(t *testing.T, reader *models.User, publisherIDs, journalistIDs []uint) {
	t.Helper()
	_, err := f.subscriptions.SetSubscriptions(reader, models.SubscriptionRequest{
		PublisherIDs:  publisherIDs,
		JournalistIDs: journalistIDs,
	})
	require.NoError(t, err)
}

func (f *fixture) createArticle(t *testing.T, author *models.User, title string, publisherID *uint) *models.Article {
	t.Helper()
	article, err := f.content.CreateArticle(author, models.CreateArticleRequest{
		Title:       title,
		Content:     "content of " + title,
		PublisherID: publisherID,
	})
	require.NoError(t, err)
	return article
}

func (f *fixture) createNewsletter(t *testing.T, author *models.User, title string, publisherID *uint) *models.Newsletter {
	t.Helper()
	newsletter, err := f.content.CreateNewsletter(author, models.CreateNewsletterRequest{
		Title:       title,
		Body:        "body of " + title,
		PublisherID: publisherID,
	})
	require.NoError(t, err)
	return newsletter
}
