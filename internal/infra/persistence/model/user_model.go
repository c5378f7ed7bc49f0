// Package model holds the GORM persistence models mirroring the
// relational schema. Mapping to and from domain entities happens in the
// repository implementations.
package model

import "time"

// UserModel mirrors the 'users' table. Email uniqueness is enforced by
// the unique index, not re-checked in application code.
type UserModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	FirstName    *string `gorm:"type:varchar(100)"`
	LastName     *string `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Bookmarks []BookmarkModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
