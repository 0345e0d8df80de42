package domain

// User is the authenticated caller, restored from access token claims.
type User struct {
	Id       UserId
	Username Username
}
