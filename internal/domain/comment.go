package domain

import "time"

type Comment struct {
	Id         CommentId `json:"id"`
	Content    string    `json:"content"`
	IsMarkdown bool      `json:"isMarkdown"`

	// ProcessedContent is derived on every read and never persisted.
	// Equals Content when IsMarkdown is false, rendered HTML otherwise.
	ProcessedContent string `json:"processedContent"`

	Author    User      `json:"author"`
	PostId    PostId    `json:"post"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentCreationData struct {
	PostId     PostId
	Author     User
	Content    string
	IsMarkdown bool
}

// CommentUpdateData: content always replaces, the markdown flag only
// changes when the request carried it explicitly.
type CommentUpdateData struct {
	Content    string
	IsMarkdown *bool
}
