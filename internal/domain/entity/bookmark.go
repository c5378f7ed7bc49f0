package entity

import "time"

// Bookmark is a saved link owned by exactly one user. Every read or
// mutation must confirm UserID against the requester before acting.
type Bookmark struct {
	ID          int64     // Auto-incremented numeric identifier.
	UserID      int64     // Owning user; foreign key to User.ID.
	Title       string    // Required display title.
	Link        string    // Required URL.
	Description string    // Optional free-form note.
	CreatedAt   time.Time // Timestamp of creation.
	UpdatedAt   time.Time // Timestamp of the last mutation.
}

// OwnedBy reports whether the bookmark belongs to the given user.
func (b *Bookmark) OwnedBy(userID int64) bool {
	return b.UserID == userID
}
