package handler

import (
	"net/http"
	"strconv"
	"time"

	"stash/internal/delivery/http/middleware"
	"stash/internal/delivery/http/response"
	"stash/internal/domain/entity"
	domainerrors "stash/internal/domain/errors"
	"stash/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookmarkHandler holds dependencies for bookmark handlers. Every route
// it serves sits behind the auth middleware; the owner id always comes
// from the verified token, never from the payload.
type BookmarkHandler struct {
	uc usecase.BookmarkUsecase
}

// NewBookmarkHandler is the constructor for BookmarkHandler, injected by Fx.
func NewBookmarkHandler(uc usecase.BookmarkUsecase) *BookmarkHandler {
	return &BookmarkHandler{uc: uc}
}

type createBookmarkRequest struct {
	Title       string `json:"title" validate:"required"`
	Link        string `json:"link" validate:"required,url"`
	Description string `json:"description"`
}

type updateBookmarkRequest struct {
	Title       *string `json:"title"`
	Link        *string `json:"link" validate:"omitempty,url"`
	Description *string `json:"description"`
}

type bookmarkResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// List returns all bookmarks owned by the authenticated user.
func (h *BookmarkHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarks, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]bookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, toBookmarkResponse(b))
	}

	return response.Success(c, http.StatusOK, out, "Bookmarks retrieved successfully")
}

// Get returns a single owned bookmark.
func (h *BookmarkHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarkID, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	bookmark, err := h.uc.Get(c.Request().Context(), userID, bookmarkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponse(bookmark), "Bookmark retrieved successfully")
}

// Create stores a new bookmark for the authenticated user.
func (h *BookmarkHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bookmark, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateBookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBookmarkResponse(bookmark), "Bookmark created successfully")
}

// Update applies a partial edit to an owned bookmark.
func (h *BookmarkHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarkID, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	var req updateBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bookmark, err := h.uc.Update(c.Request().Context(), userID, bookmarkID, &usecase.UpdateBookmarkInput{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponse(bookmark), "Bookmark updated successfully")
}

// Delete permanently removes an owned bookmark.
func (h *BookmarkHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarkID, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), userID, bookmarkID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Bookmark deleted"}, "Bookmark deleted successfully")
}

func parseBookmarkID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("bookmark id must be numeric")
	}

	return id, nil
}

func toBookmarkResponse(b *entity.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:          b.ID,
		Title:       b.Title,
		Link:        b.Link,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
