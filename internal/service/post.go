package service

import (
	"strings"

	"github.com/inkwell-dev/inkwell/internal/domain"
	"github.com/inkwell-dev/inkwell/internal/errors"
)

type PostService interface {
	Create(data domain.PostCreationData) (domain.Post, error)
	List() ([]domain.Post, error)
	Get(id domain.PostId) (domain.Post, error)
	Update(id domain.PostId, actor domain.User, upd domain.PostUpdateData) (domain.Post, error)
	Delete(id domain.PostId, actor domain.User) error
}

type Post struct {
	storage  PostStorage
	renderer ContentRenderer
}

type PostStorage interface {
	CreatePost(data domain.PostCreationData) (domain.Post, error)
	GetPosts() ([]domain.Post, error)
	GetPost(id domain.PostId) (domain.Post, error)
	UpdatePost(id domain.PostId, upd domain.PostUpdateData) (domain.Post, error)
	// DeletePostCascade removes the post and every comment referencing it
	// as one unit.
	DeletePostCascade(id domain.PostId) error
}

// ContentRenderer computes the display form of comment content on read.
type ContentRenderer interface {
	Process(content string, isMarkdown bool) string
}

func NewPost(storage PostStorage, renderer ContentRenderer) *Post {
	return &Post{storage: storage, renderer: renderer}
}

func (p *Post) Create(data domain.PostCreationData) (domain.Post, error) {
	data.Title = strings.TrimSpace(data.Title)
	if data.Title == "" || data.Content == "" {
		return domain.Post{}, errors.Validation("Title and content are required")
	}

	post, err := p.storage.CreatePost(data)
	if err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func (p *Post) List() ([]domain.Post, error) {
	posts, err := p.storage.GetPosts()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		p.renderComments(&posts[i])
	}
	return posts, nil
}

func (p *Post) Get(id domain.PostId) (domain.Post, error) {
	post, err := p.storage.GetPost(id)
	if err != nil {
		return domain.Post{}, err
	}
	p.renderComments(&post)
	return post, nil
}

// Update is a sparse merge: empty title or content keeps the stored value.
// An explicit empty string therefore cannot clear a field.
func (p *Post) Update(id domain.PostId, actor domain.User, upd domain.PostUpdateData) (domain.Post, error) {
	post, err := p.storage.GetPost(id)
	if err != nil {
		return domain.Post{}, err
	}
	if post.Author.Id != actor.Id {
		return domain.Post{}, errors.Forbidden("Not authorized to update this post")
	}

	merged := domain.PostUpdateData{Title: post.Title, Content: post.Content}
	if title := strings.TrimSpace(upd.Title); title != "" {
		merged.Title = title
	}
	if upd.Content != "" {
		merged.Content = upd.Content
	}

	updated, err := p.storage.UpdatePost(id, merged)
	if err != nil {
		return domain.Post{}, err
	}
	p.renderComments(&updated)
	return updated, nil
}

// Delete removes the post and cascades to its comments. Only the author
// may delete; no comment survives its parent post.
func (p *Post) Delete(id domain.PostId, actor domain.User) error {
	post, err := p.storage.GetPost(id)
	if err != nil {
		return err
	}
	if post.Author.Id != actor.Id {
		return errors.Forbidden("Not authorized to delete this post")
	}

	return p.storage.DeletePostCascade(id)
}

func (p *Post) renderComments(post *domain.Post) {
	if post.Comments == nil {
		post.Comments = []*domain.Comment{}
	}
	for _, c := range post.Comments {
		c.ProcessedContent = p.renderer.Process(c.Content, c.IsMarkdown)
	}
}
