package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type NewThread struct {
	Title ThreadTitle
	Body  ThreadBody
	Owner UserId
}

type AddedThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}

type Thread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Body  ThreadBody  `json:"body"`
	Owner UserId      `json:"owner"`
	Date  time.Time   `json:"date"`
}

// ThreadDetail is the read model of a thread page: the thread row plus its comments,
// newest first.
type ThreadDetail struct {
	Thread
	Comments []Comment `json:"comments"`
}
