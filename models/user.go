package models

import (
	"time"
)

type Role string

const (
	RoleReader     Role = "reader"
	RoleJournalist Role = "journalist"
	RoleEditor     Role = "editor"
	RolePublisher  Role = "publisher"
)

// Roles is the closed set of assignable roles.
var Roles = []Role{RoleReader, RoleJournalist, RoleEditor, RolePublisher}

func (r Role) Valid() bool {
	switch r {
	case RoleReader, RoleJournalist, RoleEditor, RolePublisher:
		return true
	}
	return false
}

type User struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     Role   `json:"role" gorm:"default:'reader'"`

	// Reader-side subscription edges. Both relations are full-replace
	// sets managed through the subscription service.
	SubscribedPublishers  []Publisher `json:"subscribed_publishers,omitempty" gorm:"many2many:reader_publisher_subscriptions;joinForeignKey:ReaderID;joinReferences:PublisherID"`
	SubscribedJournalists []*User     `json:"subscribed_journalists,omitempty" gorm:"many2many:reader_journalist_subscriptions;joinForeignKey:ReaderID;joinReferences:JournalistID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
