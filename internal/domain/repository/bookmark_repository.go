package repository

import (
	"context"
	"errors"

	"stash/internal/domain/entity"
)

// ErrBookmarkNotFound is returned when a bookmark does not exist. The
// usecase layer folds it into the same authorization failure as a
// wrong-owner read, so callers can never probe for foreign bookmarks.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkRepository defines the standard operations for bookmark persistence.
type BookmarkRepository interface {
	// ListByUser retrieves all bookmarks owned by the given user.
	// A user with no bookmarks yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Bookmark, error)

	// FindByID retrieves a single bookmark by its unique ID, regardless
	// of owner. Ownership is the caller's concern.
	FindByID(ctx context.Context, id int64) (*entity.Bookmark, error)

	// Create persists a new bookmark.
	Create(ctx context.Context, bookmark *entity.Bookmark) error

	// Update modifies an existing bookmark.
	Update(ctx context.Context, bookmark *entity.Bookmark) error

	// Delete permanently removes a bookmark. No soft delete.
	Delete(ctx context.Context, id int64) error
}
