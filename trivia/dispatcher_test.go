package trivia

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDispatcherGameStarted(t *testing.T) {
	var got GameStartedEvent
	var errCalled bool
	var d Dispatcher
	d.SetOnGameStarted(func(ev GameStartedEvent) { got = ev })
	d.SetOnError(func(err error) { errCalled = true })

	raw, _ := json.Marshal(GameStartedEvent{
		Question:       Question{ID: "q1", Text: "Capital of France?", Options: []string{"Paris", "Lyon"}},
		QuestionIndex:  0,
		TotalQuestions: 10,
	})
	d.Dispatch(Frame{Type: frameGameStarted, Payload: raw})

	if got.Question.ID != "q1" || got.TotalQuestions != 10 {
		t.Fatalf("unexpected event: %+v", got)
	}
	if errCalled {
		t.Fatalf("unexpected error callback")
	}
}

func TestDispatcherErrorFrame(t *testing.T) {
	var errGot error
	var d Dispatcher
	d.SetOnError(func(err error) { errGot = err })

	raw, _ := json.Marshal(ProtocolError{Code: "game_not_found", Detail: "no such game"})
	d.Dispatch(Frame{Type: frameError, Payload: raw})

	var te *TriviaError
	if !errors.As(errGot, &te) {
		t.Fatalf("expected TriviaError, got %v", errGot)
	}
	if te.Code != ErrorGameNotFound || te.Message != "no such game" {
		t.Fatalf("unexpected error: %+v", te)
	}
}

func TestDispatcherMalformedPayload(t *testing.T) {
	var evCalled bool
	var errGot error
	var d Dispatcher
	d.SetOnGameOver(func(GameOverEvent) { evCalled = true })
	d.SetOnError(func(err error) { errGot = err })

	d.Dispatch(Frame{Type: frameGameOver, Payload: json.RawMessage(`{"standings": "nope"}`)})

	if evCalled {
		t.Fatalf("event callback fired for malformed payload")
	}
	var te *TriviaError
	if !errors.As(errGot, &te) || te.Code != ErrorSerialization {
		t.Fatalf("expected serialization error, got %v", errGot)
	}
}

func TestDispatcherUnknownTagIgnored(t *testing.T) {
	var fired bool
	var d Dispatcher
	d.SetOnError(func(error) { fired = true })
	d.SetOnGameStarted(func(GameStartedEvent) { fired = true })

	d.Dispatch(Frame{Type: "telemetry", Payload: json.RawMessage(`{}`)})

	if fired {
		t.Fatalf("unknown frame tag triggered a callback")
	}
}

func TestDispatcherNilCallbackSkipsDecode(t *testing.T) {
	var errCalled bool
	var d Dispatcher
	d.SetOnError(func(error) { errCalled = true })

	// No participant callback registered: even a bad payload is a no-op.
	d.Dispatch(Frame{Type: frameParticipantUpdate, Payload: json.RawMessage(`{bad`)})

	if errCalled {
		t.Fatalf("decode attempted with no consumer registered")
	}
}
