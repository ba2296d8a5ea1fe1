package services

import (
	"testing"

	"newsroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSubscriptionsReaderOnly(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	for _, role := range []models.Role{models.RoleJournalist, models.RoleEditor, models.RolePublisher} {
		actor := f.createUser(t, "actor_"+string(role), role)
		_, err := f.subscriptions.SetSubscriptions(actor, models.SubscriptionRequest{
			JournalistIDs: []uint{journalist.ID},
		})

		var forbidden models.ErrorForbidden
		assert.ErrorAs(t, err, &forbidden, "role %s must not manage subscriptions", role)
	}
}

func TestSetSubscriptionsValidatesTargets(t *testing.T) {
	f := newFixture(t)

	reader := f.createUser(t, "reader", models.RoleReader)
	editor := f.createUser(t, "editor", models.RoleEditor)

	var validation models.ErrorValidation

	_, err := f.subscriptions.SetSubscriptions(reader, models.SubscriptionRequest{
		JournalistIDs: []uint{editor.ID},
	})
	assert.ErrorAs(t, err, &validation, "only journalist accounts can be followed")

	_, err = f.subscriptions.SetSubscriptions(reader, models.SubscriptionRequest{
		JournalistIDs: []uint{999},
	})
	assert.ErrorAs(t, err, &validation)

	_, err = f.subscriptions.SetSubscriptions(reader, models.SubscriptionRequest{
		PublisherIDs: []uint{999},
	})
	assert.ErrorAs(t, err, &validation)
}

func TestSetSubscriptionsReplacesWholeSet(t *testing.T) {
	f := newFixture(t)

	reader := f.createUser(t, "reader", models.RoleReader)
	alice := f.createUser(t, "alice", models.RoleJournalist)
	bob := f.createUser(t, "bob", models.RoleJournalist)
	pubA := f.createPublisher(t, "A")
	pubB := f.createPublisher(t, "B")

	f.subscribe(t, reader, []uint{pubA.ID}, []uint{alice.ID})
	f.subscribe(t, reader, []uint{pubB.ID}, []uint{bob.ID})

	got, err := f.subscriptions.GetSubscriptions(reader)
	require.NoError(t, err)

	require.Len(t, got.Publishers, 1)
	assert.Equal(t, pubB.ID, got.Publishers[0].ID)
	require.Len(t, got.Journalists, 1)
	assert.Equal(t, bob.ID, got.Journalists[0].ID, "edges absent from the request are dropped")
}

func TestSubscribedFeedFiltersBySources(t *testing.T) {
	f := newFixture(t)

	alice := f.createUser(t, "alice", models.RoleJournalist)
	bob := f.createUser(t, "bob", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)
	reader := f.createUser(t, "reader", models.RoleReader)
	publisher := f.createPublisher(t, "Tech Daily")

	f.subscribe(t, reader, []uint{publisher.ID}, []uint{alice.ID})

	fromAlice := f.createArticle(t, alice, "Exclusive: AI Update", nil)
	viaPublisher := f.createArticle(t, bob, "Through The Wire", &publisher.ID)
	unrelated := f.createArticle(t, bob, "Unrelated", nil)
	pendingFromAlice := f.createArticle(t, alice, "Still Pending", nil)

	for _, id := range []uint{fromAlice.ID, viaPublisher.ID, unrelated.ID} {
		_, err := f.content.ApproveArticle(editor, id)
		require.NoError(t, err)
	}

	newsletterID := f.createNewsletter(t, alice, "Alice Weekly", nil).ID
	_, err := f.content.ApproveNewsletter(editor, newsletterID)
	require.NoError(t, err)

	feed, err := f.subscriptions.SubscribedFeed(reader)
	require.NoError(t, err)

	titles := make([]string, 0, len(feed.Articles))
	for _, a := range feed.Articles {
		titles = append(titles, a.Title)
	}
	assert.ElementsMatch(t, []string{"Exclusive: AI Update", "Through The Wire"}, titles)
	assert.NotContains(t, titles, pendingFromAlice.Title)

	require.Len(t, feed.Newsletters, 1)
	assert.Equal(t, "Alice Weekly", feed.Newsletters[0].Title)
}

func TestSubscribedFeedEmptyWithoutSubscriptions(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)
	reader := f.createUser(t, "reader", models.RoleReader)

	article := f.createArticle(t, journalist, "Loud", nil)
	_, err := f.content.ApproveArticle(editor, article.ID)
	require.NoError(t, err)

	feed, err := f.subscriptions.SubscribedFeed(reader)
	require.NoError(t, err)
	assert.Empty(t, feed.Articles)
	assert.Empty(t, feed.Newsletters)
}

func TestSubscribedArticlesReaderOnly(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	editor := f.createUser(t, "editor", models.RoleEditor)
	reader := f.createUser(t, "reader", models.RoleReader)

	f.subscribe(t, reader, nil, []uint{journalist.ID})

	article := f.createArticle(t, journalist, "For Readers", nil)
	_, err := f.content.ApproveArticle(editor, article.ID)
	require.NoError(t, err)

	articles, err := f.subscriptions.SubscribedArticles(reader)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "For Readers", articles[0].Title)

	var forbidden models.ErrorForbidden
	_, err = f.subscriptions.SubscribedArticles(journalist)
	assert.ErrorAs(t, err, &forbidden)
	_, err = f.subscriptions.SubscribedArticles(editor)
	assert.ErrorAs(t, err, &forbidden)
}
