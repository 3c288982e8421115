package trivia

import "github.com/google/uuid"

// Identity is the (game, user) pair that names one logical connection.
// An incomplete identity means no connection is wanted.
type Identity struct {
	GameID string
	UserID string
}

// Complete reports whether both fields are present.
func (id Identity) Complete() bool {
	return id.GameID != "" && id.UserID != ""
}

// String returns "gameID/userID" for logs.
func (id Identity) String() string {
	return id.GameID + "/" + id.UserID
}

// NewGuestUserID mints an id for a temporary user. The id is opaque to the
// SDK; callers typically persist it alongside the display name and pass it
// to rest.Client.CreateUser.
func NewGuestUserID() string {
	return "guest-" + uuid.NewString()
}
