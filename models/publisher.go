package models

import (
	"time"
)

type Publisher struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`

	// Staff affiliations, independent of each other.
	Editors     []User `json:"editors,omitempty" gorm:"many2many:publisher_editors;"`
	Journalists []User `json:"journalists,omitempty" gorm:"many2many:publisher_journalists;"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
