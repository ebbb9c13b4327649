package service

import (
	"slices"

	"github.com/inkwell-dev/inkwell/internal/domain"
	"github.com/inkwell-dev/inkwell/internal/errors"
)

type CommentService interface {
	Create(data domain.CommentCreationData) (domain.Comment, error)
	List(postId domain.PostId) ([]domain.Comment, error)
	Update(postId domain.PostId, commentId domain.CommentId, actor domain.User, upd domain.CommentUpdateData) (domain.Comment, error)
	Delete(postId domain.PostId, commentId domain.CommentId, actor domain.User) error
}

type Comment struct {
	storage  CommentStorage
	renderer ContentRenderer
}

type CommentStorage interface {
	GetPost(id domain.PostId) (domain.Post, error)
	// CreateComment inserts the comment and appends its id to the parent
	// post's reference list as one unit.
	CreateComment(data domain.CommentCreationData) (domain.Comment, error)
	GetComment(id domain.CommentId) (domain.Comment, error)
	GetComments(postId domain.PostId) ([]domain.Comment, error)
	UpdateComment(id domain.CommentId, content string, isMarkdown bool) (domain.Comment, error)
	// DeleteComment removes the id from the post's reference list and
	// deletes the comment row as one unit.
	DeleteComment(postId domain.PostId, commentId domain.CommentId) error
}

func NewComment(storage CommentStorage, renderer ContentRenderer) *Comment {
	return &Comment{storage: storage, renderer: renderer}
}

func (c *Comment) Create(data domain.CommentCreationData) (domain.Comment, error) {
	if data.Content == "" {
		return domain.Comment{}, errors.Validation("Content is required")
	}

	// The parent must exist before anything is written.
	if _, err := c.storage.GetPost(data.PostId); err != nil {
		return domain.Comment{}, err
	}

	comment, err := c.storage.CreateComment(data)
	if err != nil {
		return domain.Comment{}, err
	}

	comment.ProcessedContent = c.renderer.Process(comment.Content, comment.IsMarkdown)
	return comment, nil
}

func (c *Comment) List(postId domain.PostId) ([]domain.Comment, error) {
	if _, err := c.storage.GetPost(postId); err != nil {
		return nil, err
	}

	comments, err := c.storage.GetComments(postId)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		comments[i].ProcessedContent = c.renderer.Process(comments[i].Content, comments[i].IsMarkdown)
	}
	return comments, nil
}

// Update requires the dual check: the comment row must exist AND its id
// must be a member of the post's own reference list. Only the comment's
// author may update.
func (c *Comment) Update(postId domain.PostId, commentId domain.CommentId, actor domain.User, upd domain.CommentUpdateData) (domain.Comment, error) {
	comment, _, err := c.lookup(postId, commentId)
	if err != nil {
		return domain.Comment{}, err
	}

	if comment.Author.Id != actor.Id {
		return domain.Comment{}, errors.Forbidden("Not authorized to update this comment")
	}
	if upd.Content == "" {
		return domain.Comment{}, errors.Validation("Content is required")
	}

	isMarkdown := comment.IsMarkdown
	if upd.IsMarkdown != nil {
		isMarkdown = *upd.IsMarkdown
	}

	updated, err := c.storage.UpdateComment(commentId, upd.Content, isMarkdown)
	if err != nil {
		return domain.Comment{}, err
	}

	updated.ProcessedContent = c.renderer.Process(updated.Content, updated.IsMarkdown)
	return updated, nil
}

// Delete applies the two-owner rule: the comment's author or the post's
// author may delete, nobody else.
func (c *Comment) Delete(postId domain.PostId, commentId domain.CommentId, actor domain.User) error {
	comment, post, err := c.lookup(postId, commentId)
	if err != nil {
		return err
	}

	if comment.Author.Id != actor.Id && post.Author.Id != actor.Id {
		return errors.Forbidden("Not authorized to delete this comment")
	}

	return c.storage.DeleteComment(postId, commentId)
}

// lookup performs the shared existence + membership check for update and
// delete and returns both sides of the relationship.
func (c *Comment) lookup(postId domain.PostId, commentId domain.CommentId) (domain.Comment, domain.Post, error) {
	post, err := c.storage.GetPost(postId)
	if err != nil {
		return domain.Comment{}, domain.Post{}, err
	}

	if !slices.Contains(post.CommentIds, commentId) {
		return domain.Comment{}, domain.Post{}, errors.NotFound("Comment not found on this post")
	}

	comment, err := c.storage.GetComment(commentId)
	if err != nil {
		return domain.Comment{}, domain.Post{}, err
	}
	return comment, post, nil
}
