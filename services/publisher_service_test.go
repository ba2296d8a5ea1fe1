package services

import (
	"testing"

	"newsroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListJournalists(t *testing.T) {
	f := newFixture(t)

	f.createUser(t, "alice", models.RoleJournalist)
	f.createUser(t, "bob", models.RoleJournalist)
	f.createUser(t, "editor", models.RoleEditor)
	f.createUser(t, "reader", models.RoleReader)

	journalists, err := f.publishers.ListJournalists()
	require.NoError(t, err)
	require.Len(t, journalists, 2)
	for _, j := range journalists {
		assert.Equal(t, models.RoleJournalist, j.Role)
	}
}

func TestDeletePublisherEditorOnly(t *testing.T) {
	f := newFixture(t)

	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	publisher := f.createPublisher(t, "Protected Press")

	var forbidden models.ErrorForbidden
	assert.ErrorAs(t, f.publishers.Delete(journalist, publisher.ID), &forbidden)

	editor := f.createUser(t, "editor", models.RoleEditor)
	var notFound models.ErrorNotFound
	assert.ErrorAs(t, f.publishers.Delete(editor, 404), &notFound)

	require.NoError(t, f.publishers.Delete(editor, publisher.ID))
	all, err := f.publishers.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeletePublisherClearsSubscriptionEdges(t *testing.T) {
	f := newFixture(t)

	editor := f.createUser(t, "editor", models.RoleEditor)
	reader := f.createUser(t, "reader", models.RoleReader)
	publisher := f.createPublisher(t, "Gone Tomorrow")

	f.subscribe(t, reader, []uint{publisher.ID}, nil)

	require.NoError(t, f.publishers.Delete(editor, publisher.ID))

	publishers, _, err := f.subscriptionRepo.GetForReader(reader.ID)
	require.NoError(t, err)
	assert.Empty(t, publishers)
}

func TestStaffManagement(t *testing.T) {
	f := newFixture(t)

	editor := f.createUser(t, "editor", models.RoleEditor)
	journalist := f.createUser(t, "journalist", models.RoleJournalist)
	reader := f.createUser(t, "reader", models.RoleReader)
	publisher := f.createPublisher(t, "Staffed Press")

	var forbidden models.ErrorForbidden
	assert.ErrorAs(t, f.publishers.AddStaff(journalist, publisher.ID, journalist.ID), &forbidden)

	var validation models.ErrorValidation
	assert.ErrorAs(t, f.publishers.AddStaff(editor, publisher.ID, reader.ID), &validation,
		"readers cannot be publisher staff")

	require.NoError(t, f.publishers.AddStaff(editor, publisher.ID, journalist.ID))
	require.NoError(t, f.publishers.AddStaff(editor, publisher.ID, editor.ID))

	got := f.loadPublisher(t, publisher.ID)
	require.Len(t, got.Journalists, 1)
	assert.Equal(t, journalist.ID, got.Journalists[0].ID)
	require.Len(t, got.Editors, 1)

	require.NoError(t, f.publishers.RemoveStaff(editor, publisher.ID, journalist.ID))
	assert.Empty(t, f.loadPublisher(t, publisher.ID).Journalists)
}

func (f *fixture) loadPublisher(t *testing.T, id uint) *models.Publisher {
	t.Helper()
	var publisher models.Publisher
	err := f.db.Preload("Editors").Preload("Journalists").First(&publisher, id).Error
	require.NoError(t, err)
	return &publisher
}
