package domain

import "time"

type Post struct {
	Id      PostId `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  User   `json:"author"`

	// CommentIds is the persisted reference list; Comments is the enriched
	// form served on read paths. Both describe the same set.
	CommentIds CommentIds `json:"-"`
	Comments   []*Comment `json:"comments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	Title   string
	Content string
	Author  User
}

// PostUpdateData carries the merge result of an update request. Empty
// fields mean "keep the stored value"; the merge happens in the service.
type PostUpdateData struct {
	Title   string
	Content string
}
