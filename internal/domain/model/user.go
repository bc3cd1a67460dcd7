package model

import "github.com/google/uuid"

// User is a player account exposed by the users resource.
type User struct {
	ID            uuid.UUID
	Login         string
	FirstName     string
	LastName      string
	GamesPlayed   int
	CurrentGameID *uuid.UUID
}

// Clone returns a copy that shares no memory with u.
func (u User) Clone() User {
	if u.CurrentGameID != nil {
		gameID := *u.CurrentGameID
		u.CurrentGameID = &gameID
	}
	return u
}

// NewUser carries client-supplied creation fields; nil means the field was absent.
type NewUser struct {
	Login     *string
	FirstName *string
	LastName  *string
}
