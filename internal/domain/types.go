package domain

import "github.com/lib/pq"

type (
	UserId    = int64
	PostId    = int64
	CommentId = int64

	Email    = string
	Password = string

	// CommentIds is the post-side half of the post<->comment relationship.
	// It is stored directly on the posts table and must always equal the set
	// of comment rows whose post_id points back at the post.
	CommentIds = pq.Int64Array
)
