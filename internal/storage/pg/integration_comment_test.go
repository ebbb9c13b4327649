package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/domain"
	internal_errors "github.com/inkwell-dev/inkwell/internal/errors"
)

func TestCreateComment(t *testing.T) {
	author := createTestUser(t)
	post := createTestPost(t, author)

	comment, err := storage.CreateComment(domain.CommentCreationData{
		PostId:     post.Id,
		Author:     author,
		Content:    "**bold**",
		IsMarkdown: true,
	})
	require.NoError(t, err)
	assert.Greater(t, comment.Id, int64(0))
	assert.True(t, comment.IsMarkdown)
	assert.Equal(t, post.Id, comment.PostId)

	// The post's reference list must pick up the new comment id.
	stored, err := storage.GetPost(post.Id)
	require.NoError(t, err)
	require.Len(t, stored.CommentIds, 1)
	assert.Equal(t, comment.Id, stored.CommentIds[0])
	require.Len(t, stored.Comments, 1)

	_, err = storage.CreateComment(domain.CommentCreationData{
		PostId:  999999,
		Author:  author,
		Content: "orphan",
	})
	require.Error(t, err, "Commenting on a missing post should fail")
	assert.True(t, internal_errors.IsNotFound(err))

	// The failed transaction must not leave a comment row behind.
	comments, err := storage.GetComments(999999)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestGetComment(t *testing.T) {
	author := createTestUser(t)
	post := createTestPost(t, author)

	created, err := storage.CreateComment(domain.CommentCreationData{
		PostId:  post.Id,
		Author:  author,
		Content: "hello",
	})
	require.NoError(t, err)

	comment, err := storage.GetComment(created.Id)
	require.NoError(t, err)
	assert.Equal(t, "hello", comment.Content)
	assert.Equal(t, author.Username, comment.Author.Username)

	_, err = storage.GetComment(999999)
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestGetComments(t *testing.T) {
	author := createTestUser(t)
	post := createTestPost(t, author)

	for _, content := range []string{"first", "second", "third"} {
		_, err := storage.CreateComment(domain.CommentCreationData{
			PostId:  post.Id,
			Author:  author,
			Content: content,
		})
		require.NoError(t, err)
	}

	comments, err := storage.GetComments(post.Id)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	// Newest first: insertion order reversed.
	assert.Equal(t, "third", comments[0].Content)
	assert.Equal(t, "first", comments[2].Content)

	empty, err := storage.GetComments(999999)
	require.NoError(t, err)
	assert.NotNil(t, empty, "No comments should be an empty slice, not nil")
	assert.Empty(t, empty)
}

func TestUpdateComment(t *testing.T) {
	author := createTestUser(t)
	post := createTestPost(t, author)

	created, err := storage.CreateComment(domain.CommentCreationData{
		PostId:  post.Id,
		Author:  author,
		Content: "original",
	})
	require.NoError(t, err)

	updated, err := storage.UpdateComment(created.Id, "edited", true)
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	assert.True(t, updated.IsMarkdown)

	_, err = storage.UpdateComment(999999, "x", false)
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestDeleteComment(t *testing.T) {
	author := createTestUser(t)
	post := createTestPost(t, author)

	keep, err := storage.CreateComment(domain.CommentCreationData{
		PostId:  post.Id,
		Author:  author,
		Content: "keep me",
	})
	require.NoError(t, err)
	doomed, err := storage.CreateComment(domain.CommentCreationData{
		PostId:  post.Id,
		Author:  author,
		Content: "delete me",
	})
	require.NoError(t, err)

	err = storage.DeleteComment(post.Id, doomed.Id)
	require.NoError(t, err)

	_, err = storage.GetComment(doomed.Id)
	assert.True(t, internal_errors.IsNotFound(err))

	// The reference list must drop the deleted id and keep the other one.
	stored, err := storage.GetPost(post.Id)
	require.NoError(t, err)
	require.Len(t, stored.CommentIds, 1)
	assert.Equal(t, keep.Id, stored.CommentIds[0])

	err = storage.DeleteComment(post.Id, doomed.Id)
	require.Error(t, err, "Deleting twice should report not found")
	assert.True(t, internal_errors.IsNotFound(err))
}
