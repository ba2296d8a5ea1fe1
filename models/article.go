package models

import (
	"time"
)

type Article struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	Title       string     `json:"title" gorm:"not null"`
	Content     string     `json:"content" gorm:"type:text"`
	Approved    bool       `json:"approved" gorm:"default:false"`
	AuthorID    uint       `json:"author_id" gorm:"not null"`
	Author      User       `json:"author" gorm:"foreignKey:AuthorID"`
	PublisherID *uint      `json:"publisher_id"`
	Publisher   *Publisher `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
