package trivia

import "encoding/json"

// Frame tags sent by the game service.
const (
	frameParticipantUpdate = "participant_update"
	frameParticipantLeft   = "participant_left"
	frameUserNameUpdated   = "user_name_updated"
	frameGameStarted       = "game_started"
	frameNextQuestion      = "next_question"
	frameGameOver          = "game_over"
	frameGameCancelled     = "game_cancelled"
	frameError             = "error"
)

// Frame is the envelope server -> client.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ProtocolError describes an error frame from the game service.
type ProtocolError struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func (e *ProtocolError) Error() string {
	if e == nil {
		return ""
	}
	return e.Code + ": " + e.Detail
}

// UnmarshalPayload decodes a frame payload into target.
func UnmarshalPayload(data json.RawMessage, v any) error {
	return json.Unmarshal(data, v)
}
