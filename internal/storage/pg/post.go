package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/inkwell-dev/inkwell/internal/domain"
	internal_errors "github.com/inkwell-dev/inkwell/internal/errors"
)

func (s *Storage) CreatePost(data domain.PostCreationData) (domain.Post, error) {
	post := domain.Post{
		Title:    data.Title,
		Content:  data.Content,
		Author:   data.Author,
		Comments: []*domain.Comment{},
	}
	err := s.db.QueryRow(
		"INSERT INTO posts(title, content, author_id) VALUES($1, $2, $3) RETURNING id, created, updated",
		data.Title, data.Content, data.Author.Id,
	).Scan(&post.Id, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}
	return post, nil
}

func (s *Storage) GetPost(id domain.PostId) (domain.Post, error) {
	post, err := s.post(s.db, id)
	if err != nil {
		return domain.Post{}, err
	}

	comments, err := s.commentsByPost(s.db, []domain.PostId{id})
	if err != nil {
		return domain.Post{}, err
	}
	post.Comments = comments[id]
	if post.Comments == nil {
		post.Comments = []*domain.Comment{}
	}
	return post, nil
}

// GetPosts returns every post, newest first, with comments fully populated.
// Comments for all posts are loaded in a single query and grouped in memory.
func (s *Storage) GetPosts() ([]domain.Post, error) {
	rows, err := s.db.Query(`
	SELECT p.id, p.title, p.content, p.comment_ids, p.created, p.updated,
	       u.id, u.username, u.email, u.created
	FROM posts p
	JOIN users u ON u.id = p.author_id
	ORDER BY p.created DESC, p.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	ids := []domain.PostId{}
	for rows.Next() {
		var p domain.Post
		err := rows.Scan(&p.Id, &p.Title, &p.Content, &p.CommentIds, &p.CreatedAt, &p.UpdatedAt,
			&p.Author.Id, &p.Author.Username, &p.Author.Email, &p.Author.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		p.Comments = []*domain.Comment{}
		posts = append(posts, p)
		ids = append(ids, p.Id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	if len(posts) == 0 {
		return posts, nil
	}

	comments, err := s.commentsByPost(s.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if c := comments[posts[i].Id]; c != nil {
			posts[i].Comments = c
		}
	}
	return posts, nil
}

// UpdatePost replaces title and content (the sparse merge happens in the
// service) and returns the fully populated post.
func (s *Storage) UpdatePost(id domain.PostId, upd domain.PostUpdateData) (domain.Post, error) {
	result, err := s.db.Exec(
		"UPDATE posts SET title = $1, content = $2, updated = now() WHERE id = $3",
		upd.Title, upd.Content, id,
	)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to update post: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Post{}, internal_errors.NotFound("Post not found")
	}

	return s.GetPost(id)
}

// DeletePostCascade removes the post and every comment referencing it in a
// single transaction: no comment may survive its parent post.
func (s *Storage) DeletePostCascade(id domain.PostId) error {
	ctx, cancel := s.opContext()
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM comments WHERE post_id = $1", id); err != nil {
			return fmt.Errorf("failed to delete post comments: %w", err)
		}

		result, err := tx.Exec("DELETE FROM posts WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
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
}

// post fetches a single post row with its author resolved.
func (s *Storage) post(q Querier, id domain.PostId) (domain.Post, error) {
	var p domain.Post
	err := q.QueryRow(`
	SELECT p.id, p.title, p.content, p.comment_ids, p.created, p.updated,
	       u.id, u.username, u.email, u.created
	FROM posts p
	JOIN users u ON u.id = p.author_id
	WHERE p.id = $1`, id).Scan(
		&p.Id, &p.Title, &p.Content, &p.CommentIds, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.Id, &p.Author.Username, &p.Author.Email, &p.Author.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Post not found")
		}
		return domain.Post{}, fmt.Errorf("failed to query post: %w", err)
	}
	return p, nil
}

// commentsByPost loads comments for the given posts, newest first, grouped
// by post id, with authors resolved.
func (s *Storage) commentsByPost(q Querier, ids []domain.PostId) (map[domain.PostId][]*domain.Comment, error) {
	rows, err := q.Query(`
	SELECT c.id, c.content, c.is_markdown, c.post_id, c.created, c.updated,
	       u.id, u.username, u.email, u.created
	FROM comments c
	JOIN users u ON u.id = c.author_id
	WHERE c.post_id = ANY($1)
	ORDER BY c.created DESC, c.id DESC`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	grouped := make(map[domain.PostId][]*domain.Comment)
	for rows.Next() {
		var c domain.Comment
		err := rows.Scan(&c.Id, &c.Content, &c.IsMarkdown, &c.PostId, &c.CreatedAt, &c.UpdatedAt,
			&c.Author.Id, &c.Author.Username, &c.Author.Email, &c.Author.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		grouped[c.PostId] = append(grouped[c.PostId], &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return grouped, nil
}
