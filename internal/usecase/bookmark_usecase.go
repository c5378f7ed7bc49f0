package usecase

import (
	"context"

	"stash/internal/domain/entity"
)

// CreateBookmarkInput defines the fields for a new bookmark.
type CreateBookmarkInput struct {
	Title       string
	Link        string
	Description string
}

// UpdateBookmarkInput defines a partial bookmark edit. Nil fields are
// left unchanged.
type UpdateBookmarkInput struct {
	Title       *string
	Link        *string
	Description *string
}

// BookmarkUsecase defines ownership-checked CRUD over bookmarks. The
// userID parameter always comes from the verified token's subject claim,
// injected by the delivery layer, never from the request body.
type BookmarkUsecase interface {
	// List returns all bookmarks owned by userID; empty slice if none.
	List(ctx context.Context, userID int64) ([]*entity.Bookmark, error)

	// Get returns a single owned bookmark. A missing bookmark and a
	// foreign-owned one both surface as domainerrors.ErrNotAuthorized.
	Get(ctx context.Context, userID, bookmarkID int64) (*entity.Bookmark, error)

	// Create persists a new bookmark owned by userID.
	Create(ctx context.Context, userID int64, input *CreateBookmarkInput) (*entity.Bookmark, error)

	// Update applies the supplied fields to an owned bookmark. Same
	// ownership semantics as Get.
	Update(ctx context.Context, userID, bookmarkID int64, input *UpdateBookmarkInput) (*entity.Bookmark, error)

	// Delete permanently removes an owned bookmark. Same ownership
	// semantics as Get.
	Delete(ctx context.Context, userID, bookmarkID int64) error
}
