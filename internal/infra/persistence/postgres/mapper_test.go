package postgres

import (
	"testing"

	"stash/internal/domain/entity"
	"stash/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMappers_OptionalNames(t *testing.T) {
	// Empty names persist as NULL, not as empty strings.
	userM := fromUserDomain(&entity.User{ID: 1, Email: "testuser@gmail.com", PasswordHash: "hashed"})
	require.NotNil(t, userM)
	assert.Nil(t, userM.FirstName)
	assert.Nil(t, userM.LastName)

	user := toUserDomain(userM)
	require.NotNil(t, user)
	assert.Empty(t, user.FirstName)
	assert.Empty(t, user.LastName)

	name := "Test"
	user = toUserDomain(&model.UserModel{ID: 1, Email: "testuser@gmail.com", FirstName: &name})
	assert.Equal(t, "Test", user.FirstName)
}

func TestBookmarkMappers_OptionalDescription(t *testing.T) {
	bookmarkM := fromBookmarkDomain(&entity.Bookmark{ID: 1, UserID: 1, Title: "Docs", Link: "https://example.com"})
	require.NotNil(t, bookmarkM)
	assert.Nil(t, bookmarkM.Description)

	description := "reference"
	bookmark := toBookmarkDomain(&model.BookmarkModel{ID: 1, UserID: 1, Title: "Docs", Link: "https://example.com", Description: &description})
	require.NotNil(t, bookmark)
	assert.Equal(t, "reference", bookmark.Description)
}

func TestMappers_NilInput(t *testing.T) {
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
	assert.Nil(t, toBookmarkDomain(nil))
	assert.Nil(t, fromBookmarkDomain(nil))
}
