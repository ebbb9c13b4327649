package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/inkwell-dev/inkwell/internal/domain"
	internal_errors "github.com/inkwell-dev/inkwell/internal/errors"
)

// CreateComment inserts the comment row and appends its id to the parent
// post's reference list in one transaction, keeping both sides of the
// relationship in step.
func (s *Storage) CreateComment(data domain.CommentCreationData) (domain.Comment, error) {
	ctx, cancel := s.opContext()
	defer cancel()

	comment := domain.Comment{
		Content:    data.Content,
		IsMarkdown: data.IsMarkdown,
		Author:     data.Author,
		PostId:     data.PostId,
	}
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRow(
			"INSERT INTO comments(content, is_markdown, author_id, post_id) VALUES($1, $2, $3, $4) RETURNING id, created, updated",
			data.Content, data.IsMarkdown, data.Author.Id, data.PostId,
		).Scan(&comment.Id, &comment.CreatedAt, &comment.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert comment: %w", err)
		}

		result, err := tx.Exec(
			"UPDATE posts SET comment_ids = array_append(comment_ids, $1) WHERE id = $2",
			comment.Id, data.PostId,
		)
		if err != nil {
			return fmt.Errorf("failed to append comment reference: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}
		if affected == 0 {
			return internal_errors.NotFound("Post not found")
		}
		return nil
	})
	if err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

func (s *Storage) GetComment(id domain.CommentId) (domain.Comment, error) {
	var c domain.Comment
	err := s.db.QueryRow(`
	SELECT c.id, c.content, c.is_markdown, c.post_id, c.created, c.updated,
	       u.id, u.username, u.email, u.created
	FROM comments c
	JOIN users u ON u.id = c.author_id
	WHERE c.id = $1`, id).Scan(
		&c.Id, &c.Content, &c.IsMarkdown, &c.PostId, &c.CreatedAt, &c.UpdatedAt,
		&c.Author.Id, &c.Author.Username, &c.Author.Email, &c.Author.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, internal_errors.NotFound("Comment not found")
		}
		return domain.Comment{}, fmt.Errorf("failed to query comment: %w", err)
	}
	return c, nil
}

// GetComments returns the post's comments newest first, authors resolved.
func (s *Storage) GetComments(postId domain.PostId) ([]domain.Comment, error) {
	rows, err := s.db.Query(`
	SELECT c.id, c.content, c.is_markdown, c.post_id, c.created, c.updated,
	       u.id, u.username, u.email, u.created
	FROM comments c
	JOIN users u ON u.id = c.author_id
	WHERE c.post_id = $1
	ORDER BY c.created DESC, c.id DESC`, postId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		err := rows.Scan(&c.Id, &c.Content, &c.IsMarkdown, &c.PostId, &c.CreatedAt, &c.UpdatedAt,
			&c.Author.Id, &c.Author.Username, &c.Author.Email, &c.Author.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

func (s *Storage) UpdateComment(id domain.CommentId, content string, isMarkdown bool) (domain.Comment, error) {
	result, err := s.db.Exec(
		"UPDATE comments SET content = $1, is_markdown = $2, updated = now() WHERE id = $3",
		content, isMarkdown, id,
	)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("failed to update comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Comment{}, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Comment{}, internal_errors.NotFound("Comment not found")
	}

	return s.GetComment(id)
}

// DeleteComment removes the id from the post's reference list and deletes
// the comment row in one transaction.
func (s *Storage) DeleteComment(postId domain.PostId, commentId domain.CommentId) error {
	ctx, cancel := s.opContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			"UPDATE posts SET comment_ids = array_remove(comment_ids, $1) WHERE id = $2",
			commentId, postId,
		); err != nil {
			return fmt.Errorf("failed to remove comment reference: %w", err)
		}

		result, err := tx.Exec("DELETE FROM comments WHERE id = $1", commentId)
		if err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read rows affected: %w", err)
		}
		if affected == 0 {
			return internal_errors.NotFound("Comment not found")
		}
		return nil
	})
}
