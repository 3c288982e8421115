package trivia

// Participant is one player in a game session.
type Participant struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	IsHost      bool   `json:"is_host"`
	Score       int    `json:"score"`
}

// Question is one trivia question as shown to players. CorrectAnswer is
// never present on the wire; answers are graded server-side.
type Question struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	Options          []string `json:"options"`
	TimeLimitSeconds int      `json:"time_limit_seconds"`
}

// Standing is one row of the final results.
type Standing struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
}

// ParticipantUpdateEvent carries the full roster after a join or update.
type ParticipantUpdateEvent struct {
	Participants []Participant `json:"participants"`
	Total        int           `json:"total"`
}

// ParticipantLeftEvent is emitted when a player leaves the session.
type ParticipantLeftEvent struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// UserNameUpdatedEvent is emitted when a player changes display name.
type UserNameUpdatedEvent struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// GameStartedEvent carries the first question.
type GameStartedEvent struct {
	Question       Question `json:"question"`
	QuestionIndex  int      `json:"question_index"`
	TotalQuestions int      `json:"total_questions"`
}

// NextQuestionEvent advances the game to the next question.
type NextQuestionEvent struct {
	Question      Question `json:"question"`
	QuestionIndex int      `json:"question_index"`
}

// GameOverEvent carries the final standings.
type GameOverEvent struct {
	Standings []Standing `json:"standings"`
}

// GameCancelledEvent is emitted when the host abandons the session.
type GameCancelledEvent struct {
	Reason string `json:"reason,omitempty"`
}
