package services

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"newsroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanoutDeduplicatesAcrossRelations(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)
	reader := f.createUser(t, "reader", models.RoleReader)
	publisher := f.createPublisher(t, "Tech News")

	// Subscribed to both the author and the publisher.
	f.subscribe(t, reader, []uint{publisher.ID}, []uint{journalist.ID})

	article := f.createArticle(t, journalist, "Launch Day", &publisher.ID)
	_, err := f.content.ApproveArticle(editor, article.ID)
	require.NoError(t, err)

	recipients := f.mailer.recipients()
	assert.Equal(t, []string{reader.Email}, recipients, "reader must be notified exactly once")
}

func TestFanoutDoesNotFireWhilePending(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	reader := f.createUser(t, "reader", models.RoleReader)
	f.subscribe(t, reader, nil, []uint{journalist.ID})

	article := f.createArticle(t, journalist, "Draft", nil)

	// Edit-save the pending item a few times.
	for i := 0; i < 3; i++ {
		_, err := f.content.UpdateArticle(journalist, article.ID, models.UpdateArticleRequest{
			Title:   fmt.Sprintf("Draft v%d", i),
			Content: "still pending",
		})
		require.NoError(t, err)
	}

	assert.Empty(t, f.mailer.sent)
	assert.Empty(t, f.social.posts)
}

func TestApprovedResaveRefiresPipeline(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)
	reader := f.createUser(t, "reader", models.RoleReader)
	f.subscribe(t, reader, nil, []uint{journalist.ID})

	article := f.createArticle(t, journalist, "Breaking", nil)

	_, err := f.content.ApproveArticle(editor, article.ID)
	require.NoError(t, err)
	_, err = f.content.ApproveArticle(editor, article.ID)
	require.NoError(t, err)

	// The approval latch is idempotent, the side effect is not.
	assert.Len(t, f.mailer.sent, 2)
	assert.Len(t, f.social.posts, 2)
}

func TestEditOfApprovedItemRefiresFanout(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)
	reader := f.createUser(t, "reader", models.RoleReader)
	f.subscribe(t, reader, nil, []uint{journalist.ID})

	article := f.createArticle(t, journalist, "Correction Pending", nil)
	_, err := f.content.ApproveArticle(editor, article.ID)
	require.NoError(t, err)

	_, err = f.content.UpdateArticle(journalist, article.ID, models.UpdateArticleRequest{
		Title:   "Corrected",
		Content: "fixed",
	})
	require.NoError(t, err)

	// One send for the approval, one for the edit of the approved item.
	require.Len(t, f.mailer.sent, 2)
	assert.Equal(t, "New Article: Corrected", f.mailer.sent[1].Subject)
	assert.Len(t, f.social.posts, 2)

	newsletter := f.createNewsletter(t, journalist, "Digest", nil)
	_, err = f.content.ApproveNewsletter(editor, newsletter.ID)
	require.NoError(t, err)
	_, err = f.content.UpdateNewsletter(journalist, newsletter.ID, models.UpdateNewsletterRequest{
		Title: "Digest v2",
		Body:  "revised",
	})
	require.NoError(t, err)

	require.Len(t, f.mailer.sent, 4)
	assert.Equal(t, "📰 Newsletter from journalist: Digest v2", f.mailer.sent[3].Subject)
}

func TestEmptiedSubscriptionsLeaveFanout(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)
	reader := f.createUser(t, "reader", models.RoleReader)

	f.subscribe(t, reader, nil, []uint{journalist.ID})
	f.subscribe(t, reader, nil, nil)

	article := f.createArticle(t, journalist, "Nobody Listens", nil)
	_, err := f.content.ApproveArticle(editor, article.ID)
	require.NoError(t, err)

	assert.Empty(t, f.mailer.sent)
}

func TestFanoutSkipsRecipientsWithoutEmail(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)
	reader := f.createUser(t, "reader", models.RoleReader)

	noEmail := &models.User{Username: "quiet", Email: "", Password: "hashed", Role: models.RoleReader}
	require.NoError(t, f.db.Create(noEmail).Error)

	f.subscribe(t, reader, nil, []uint{journalist.ID})
	f.subscribe(t, noEmail, nil, []uint{journalist.ID})

	article := f.createArticle(t, journalist, "Quiet News", nil)
	_, err := f.content.ApproveArticle(editor, article.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{reader.Email}, f.mailer.recipients())
}

func TestEmailFailureDoesNotAbortRemainingSends(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)
	bouncing := f.createUser(t, "bouncing", models.RoleReader)
	healthy := f.createUser(t, "healthy", models.RoleReader)

	f.mailer.failFor[bouncing.Email] = true

	f.subscribe(t, bouncing, nil, []uint{journalist.ID})
	f.subscribe(t, healthy, nil, []uint{journalist.ID})

	newsletter := f.createNewsletter(t, journalist, "Weekly Digest", nil)
	_, err := f.content.ApproveNewsletter(editor, newsletter.ID)
	require.NoError(t, err, "a bounced recipient must not fail the approval")

	assert.Equal(t, []string{healthy.Email}, f.mailer.recipients())
}

func TestEmailSubjects(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "jane", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)
	reader := f.createUser(t, "reader", models.RoleReader)
	f.subscribe(t, reader, nil, []uint{journalist.ID})

	article := f.createArticle(t, journalist, "Big Story", nil)
	_, err := f.content.ApproveArticle(editor, article.ID)
	require.NoError(t, err)

	newsletter := f.createNewsletter(t, journalist, "Week 12", nil)
	_, err = f.content.ApproveNewsletter(editor, newsletter.ID)
	require.NoError(t, err)

	require.Len(t, f.mailer.sent, 2)
	assert.Equal(t, "New Article: Big Story", f.mailer.sent[0].Subject)
	assert.Equal(t, "content of Big Story", f.mailer.sent[0].Body)
	assert.Equal(t, "📰 Newsletter from jane: Week 12", f.mailer.sent[1].Subject)
	assert.Equal(t, "body of Week 12", f.mailer.sent[1].Body)
}

func TestSocialPostFormatAndTruncation(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "jane", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)

	long, err := f.content.CreateArticle(journalist, models.CreateArticleRequest{
		Title:   "Endless",
		Content: strings.Repeat("ü", 500),
	})
	require.NoError(t, err)

	_, err = f.content.ApproveArticle(editor, long.ID)
	require.NoError(t, err)

	require.Len(t, f.social.posts, 1)
	post := f.social.posts[0]
	assert.True(t, strings.HasPrefix(post, "📰 Article from jane: Endless\n"))
	assert.Len(t, []rune(post), 280, "truncation is per character, not per byte")
}

func TestSocialFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.social.err = errors.New("rate limited")

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)
	reader := f.createUser(t, "reader", models.RoleReader)
	f.subscribe(t, reader, nil, []uint{journalist.ID})

	article := f.createArticle(t, journalist, "Resilient", nil)
	approved, err := f.content.ApproveArticle(editor, article.ID)
	require.NoError(t, err)

	assert.True(t, approved.Approved)
	assert.Len(t, f.mailer.sent, 1, "email fanout runs regardless of the social failure")
}

func TestNewslettersDoNotPostToSocial(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)

	newsletter := f.createNewsletter(t, journalist, "No Tweets", nil)
	_, err := f.content.ApproveNewsletter(editor, newsletter.ID)
	require.NoError(t, err)

	assert.Empty(t, f.social.posts)
}
