package postgres

import (
	"context"

	"stash/internal/domain/entity"
	domainerrors "stash/internal/domain/errors"
	"stash/internal/domain/repository"
	"stash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookmarkRepository implements the repository.BookmarkRepository interface using GORM.
type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository is the constructor for bookmarkRepository.
func NewBookmarkRepository(db *gorm.DB) repository.BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// ListByUser retrieves all bookmarks owned by the given user, newest first.
func (repo *bookmarkRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Bookmark, error) {
	var bookmarkMs []model.BookmarkModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&bookmarkMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	bookmarks := make([]*entity.Bookmark, 0, len(bookmarkMs))
	for i := range bookmarkMs {
		bookmarks = append(bookmarks, toBookmarkDomain(&bookmarkMs[i]))
	}

	return bookmarks, nil
}

// FindByID retrieves a single bookmark by its unique ID. Ownership is
// checked by the usecase, which needs to see foreign-owned rows to fold
// them into the same authorization failure as missing ones.
func (repo *bookmarkRepository) FindByID(ctx context.Context, id int64) (*entity.Bookmark, error) {
	var bookmarkM model.BookmarkModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookmarkM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookmarkNotFound
		}

		return nil, errors.Wrap(err, "failed to find bookmark by id")
	}

	return toBookmarkDomain(&bookmarkM), nil
}

// Create persists a new bookmark entity.
func (repo *bookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	if err := repo.db.WithContext(ctx).Create(bookmarkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required bookmark fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bookmark")
	}

	bookmark.ID = bookmarkM.ID
	bookmark.CreatedAt = bookmarkM.CreatedAt
	bookmark.UpdatedAt = bookmarkM.UpdatedAt

	return nil
}

// Update modifies an existing bookmark entity.
func (repo *bookmarkRepository) Update(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	if err := repo.db.WithContext(ctx).Save(bookmarkM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update bookmark")
	}

	bookmark.UpdatedAt = bookmarkM.UpdatedAt

	return nil
}

// Delete permanently removes a bookmark row.
func (repo *bookmarkRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.BookmarkModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete bookmark")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookmarkNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookmarkDomain converts a GORM BookmarkModel to a domain Bookmark entity.
func toBookmarkDomain(data *model.BookmarkModel) *entity.Bookmark {
	if data == nil {
		return nil
	}

	return &entity.Bookmark{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Link:        data.Link,
		Description: deref(data.Description),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBookmarkDomain converts a domain Bookmark entity to a GORM BookmarkModel.
func fromBookmarkDomain(data *entity.Bookmark) *model.BookmarkModel {
	if data == nil {
		return nil
	}

	return &model.BookmarkModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Link:        data.Link,
		Description: optional(data.Description),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
