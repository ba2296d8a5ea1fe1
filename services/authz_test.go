package services

import (
	"testing"

	"newsroom/models"

	"github.com/stretchr/testify/assert"
)

func TestCanEditOrDelete(t *testing.T) {
	author := &models.User{ID: 1, Role: models.RoleJournalist}
	otherJournalist := &models.User{ID: 2, Role: models.RoleJournalist}
	editor := &models.User{ID: 3, Role: models.RoleEditor}
	reader := &models.User{ID: 4, Role: models.RoleReader}
	publisher := &models.User{ID: 5, Role: models.RolePublisher}

	tests := []struct {
		name  string
		actor *models.User
		want  bool
	}{
		{"editor may edit anything", editor, true},
		{"author may edit own item", author, true},
		{"different journalist may not", otherJournalist, false},
		{"reader may not", reader, false},
		{"publisher may not", publisher, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEditOrDelete(tt.actor, author.ID))
		})
	}
}

func TestRolePredicates(t *testing.T) {
	for _, role := range models.Roles {
		actor := &models.User{ID: 1, Role: role}

		assert.Equal(t, role == models.RoleJournalist, CanCreateContent(actor), "CanCreateContent for %s", role)
		assert.Equal(t, role == models.RoleEditor, CanApprove(actor), "CanApprove for %s", role)
		assert.Equal(t, role == models.RoleReader, CanManageSubscriptions(actor), "CanManageSubscriptions for %s", role)
		assert.Equal(t, role == models.RoleEditor, CanReassignRoles(actor), "CanReassignRoles for %s", role)
	}
}
