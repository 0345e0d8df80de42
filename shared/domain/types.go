package domain

type (
	UserId   = string
	Username = string

	ThreadId    = string
	ThreadTitle = string
	ThreadBody  = string

	CommentId      = string
	CommentContent = string
)

// IdGenerator produces the unique suffix of a new entity id.
// Repositories call it exactly once per created row.
type IdGenerator func() string
