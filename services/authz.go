package services

import (
	"newsroom/models"
)

// Authorization gate: pure predicates over (actor, action, target).
// Every mutation in the content and subscription services checks one of
// these before touching the store.

func CanCreateContent(actor *models.User) bool {
	return actor.Role == models.RoleJournalist
}

func CanApprove(actor *models.User) bool {
	return actor.Role == models.RoleEditor
}

// CanEditOrDelete permits editors on any item and journalists on their
// own. The switch is exhaustive over the closed role set so a new role
// forces a decision here.
func CanEditOrDelete(actor *models.User, authorID uint) bool {
	switch actor.Role {
	case models.RoleEditor:
		return true
	case models.RoleJournalist:
		return actor.ID == authorID
	case models.RoleReader, models.RolePublisher:
		return false
	}
	return false
}

func CanManageSubscriptions(actor *models.User) bool {
	return actor.Role == models.RoleReader
}

func CanReassignRoles(actor *models.User) bool {
	return actor.Role == models.RoleEditor
}
