package model

import "time"

// BookmarkModel mirrors the 'bookmarks' table. UserID references users.id.
type BookmarkModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	UserID      int64   `gorm:"index;not null"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Link        string  `gorm:"type:varchar(2048);not null"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookmarkModel) TableName() string {
	return "bookmarks"
}
