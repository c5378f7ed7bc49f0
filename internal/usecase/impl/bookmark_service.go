package impl

import (
	"context"
	"log/slog"

	deliverycontext "stash/internal/delivery/context"
	"stash/internal/domain/entity"
	domainerrors "stash/internal/domain/errors"
	"stash/internal/domain/repository"
	"stash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookmarkService implements the BookmarkUsecase interface.
type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	logger       *slog.Logger
}

// BookmarkServiceParams holds dependencies for bookmarkService, injected by Fx.
type BookmarkServiceParams struct {
	fx.In

	BookmarkRepo repository.BookmarkRepository
	Logger       *slog.Logger
}

// NewBookmarkService is the constructor for bookmarkService.
func NewBookmarkService(params BookmarkServiceParams) usecase.BookmarkUsecase {
	return &bookmarkService{
		bookmarkRepo: params.BookmarkRepo,
		logger:       params.Logger,
	}
}

func (srv *bookmarkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every bookmark owned by userID. Zero bookmarks is a
// normal outcome: an empty slice, never an error.
func (srv *bookmarkService) List(ctx context.Context, userID int64) ([]*entity.Bookmark, error) {
	bookmarks, err := srv.bookmarkRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list bookmarks", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	return bookmarks, nil
}

// Get fetches one owned bookmark, re-checking ownership on this request's
// own fresh read.
func (srv *bookmarkService) Get(ctx context.Context, userID, bookmarkID int64) (*entity.Bookmark, error) {
	return srv.findOwned(ctx, userID, bookmarkID)
}

// Create persists a new bookmark for userID.
func (srv *bookmarkService) Create(ctx context.Context, userID int64, input *usecase.CreateBookmarkInput) (*entity.Bookmark, error) {
	bookmark := &entity.Bookmark{
		UserID:      userID,
		Title:       input.Title,
		Link:        input.Link,
		Description: input.Description,
	}

	if err := srv.bookmarkRepo.Create(ctx, bookmark); err != nil {
		srv.log(ctx).Error("Failed to create bookmark", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create bookmark")
	}

	srv.log(ctx).Debug("Bookmark created", slog.Int64("userID", userID), slog.Int64("bookmarkID", bookmark.ID))

	return bookmark, nil
}

// Update applies only the supplied fields to an owned bookmark.
func (srv *bookmarkService) Update(ctx context.Context, userID, bookmarkID int64, input *usecase.UpdateBookmarkInput) (*entity.Bookmark, error) {
	bookmark, err := srv.findOwned(ctx, userID, bookmarkID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		bookmark.Title = *input.Title
	}
	if input.Link != nil {
		bookmark.Link = *input.Link
	}
	if input.Description != nil {
		bookmark.Description = *input.Description
	}

	if err := srv.bookmarkRepo.Update(ctx, bookmark); err != nil {
		srv.log(ctx).Error("Failed to update bookmark", slog.Int64("bookmarkID", bookmarkID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update bookmark")
	}

	return bookmark, nil
}

// Delete permanently removes an owned bookmark.
func (srv *bookmarkService) Delete(ctx context.Context, userID, bookmarkID int64) error {
	if _, err := srv.findOwned(ctx, userID, bookmarkID); err != nil {
		return err
	}

	if err := srv.bookmarkRepo.Delete(ctx, bookmarkID); err != nil {
		// A concurrent delete between the ownership read and this call
		// surfaces the same way as any other missing bookmark.
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return domainerrors.ErrNotAuthorized.WrapMessage("bookmark access denied")
		}

		srv.log(ctx).Error("Failed to delete bookmark", slog.Int64("bookmarkID", bookmarkID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete bookmark")
	}

	srv.log(ctx).Debug("Bookmark deleted", slog.Int64("userID", userID), slog.Int64("bookmarkID", bookmarkID))

	return nil
}

// findOwned fetches a bookmark and verifies ownership. A missing row and
// a foreign-owned row return the identical error so the existence of
// other users' bookmarks is never observable.
func (srv *bookmarkService) findOwned(ctx context.Context, userID, bookmarkID int64) (*entity.Bookmark, error) {
	bookmark, err := srv.bookmarkRepo.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, domainerrors.ErrNotAuthorized.WrapMessage("bookmark access denied")
		}

		srv.log(ctx).Error("Failed to load bookmark", slog.Int64("bookmarkID", bookmarkID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load bookmark")
	}

	if !bookmark.OwnedBy(userID) {
		srv.log(ctx).Warn("Bookmark ownership check failed", slog.Int64("userID", userID), slog.Int64("bookmarkID", bookmarkID))

		return nil, domainerrors.ErrNotAuthorized.WrapMessage("bookmark access denied")
	}

	return bookmark, nil
}
