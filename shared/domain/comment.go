package domain

import "time"

type NewComment struct {
	Content  CommentContent
	ThreadId ThreadId
	Owner    UserId
}

type AddedComment struct {
	Id      CommentId      `json:"id"`
	Content CommentContent `json:"content"`
	Owner   UserId         `json:"owner"`
}

// Comment is a full comments row. Deleted comments stay in storage with Deleted set.
type Comment struct {
	Id       CommentId      `json:"id"`
	Content  CommentContent `json:"content"`
	ThreadId ThreadId       `json:"thread_id"`
	Owner    UserId         `json:"owner"`
	Date     time.Time      `json:"date"`
	Deleted  bool           `json:"deleted"`
}
