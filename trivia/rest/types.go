package rest

import (
	"fmt"
	"time"
)

// MinParticipantsToStart is the smallest crew a multiplayer game can start
// with, host included. Callers gate the start action on it; the server has
// the final say.
const MinParticipantsToStart = 2

// User types

// CreateUserRequest is the request body for creating a (possibly temporary)
// user. ID may carry a client-minted id (see trivia.NewGuestUserID) that the
// caller keeps in local storage; the service echoes it back as the canonical
// key.
type CreateUserRequest struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"display_name"`
	IsTemporary bool   `json:"is_temporary,omitempty"`
}

// UpdateUserRequest is the request body for renaming a user.
type UpdateUserRequest struct {
	DisplayName string `json:"display_name"`
}

// User represents a player account.
type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	IsTemporary bool      `json:"is_temporary"`
	CreatedAt   time.Time `json:"created_at"`
}

// Pack types

// Pack is a themed set of trivia questions.
type Pack struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	QuestionCount int    `json:"question_count"`
}

// Game types

// GameStatus is the lifecycle phase of a game session.
type GameStatus string

const (
	GameStatusPending   GameStatus = "pending"
	GameStatusActive    GameStatus = "active"
	GameStatusCompleted GameStatus = "completed"
	GameStatusCancelled GameStatus = "cancelled"
)

// CreateGameRequest is the request body for creating a game session.
type CreateGameRequest struct {
	PackID           string `json:"pack_id"`
	CreatorID        string `json:"creator_id"`
	QuestionCount    int    `json:"question_count,omitempty"`
	TimeLimitSeconds int    `json:"time_limit_seconds,omitempty"`
}

// Game represents a game session. Code is the short join code shown to the
// host for sharing.
type Game struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	Status        GameStatus `json:"status"`
	PackID        string     `json:"pack_id"`
	CreatorID     string     `json:"creator_id"`
	QuestionCount int        `json:"question_count"`
	CreatedAt     time.Time  `json:"created_at"`
}

// JoinGameRequest is the request body for joining by code.
type JoinGameRequest struct {
	GameCode    string `json:"game_code"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
}

// Participant is one joined player as reported by the participants endpoint.
type Participant struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	IsHost      bool      `json:"is_host"`
	Score       int       `json:"score"`
	JoinedAt    time.Time `json:"joined_at"`
}

// ParticipantsResponse is the participants listing.
type ParticipantsResponse struct {
	Total        int           `json:"total"`
	Participants []Participant `json:"participants"`
}

// StartGameRequest is the request body for starting a game. Only the host
// may start.
type StartGameRequest struct {
	UserID string `json:"user_id"`
}

// SubmitAnswerRequest is the request body for answering a question.
type SubmitAnswerRequest struct {
	UserID        string `json:"user_id"`
	QuestionIndex int    `json:"question_index"`
	Answer        string `json:"answer"`
}

// SubmitAnswerResponse acknowledges an answer. Correctness is revealed only
// once the question closes.
type SubmitAnswerResponse struct {
	Accepted bool `json:"accepted"`
}

// ErrorResponse is the error body the game service returns on non-2xx.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// APIError is a failed request with the human-readable detail the service
// supplied. Callers show Detail to the user as-is.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Detail)
}
