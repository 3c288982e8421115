package trivia

// Dispatcher routes inbound frames to registered callbacks.
type Dispatcher struct {
	onParticipantUpdate func(ParticipantUpdateEvent)
	onParticipantLeft   func(ParticipantLeftEvent)
	onUserNameUpdated   func(UserNameUpdatedEvent)
	onGameStarted       func(GameStartedEvent)
	onNextQuestion      func(NextQuestionEvent)
	onGameOver          func(GameOverEvent)
	onGameCancelled     func(GameCancelledEvent)
	onError             func(error)
}

func (d *Dispatcher) SetOnParticipantUpdate(fn func(ParticipantUpdateEvent)) {
	d.onParticipantUpdate = fn
}
func (d *Dispatcher) SetOnParticipantLeft(fn func(ParticipantLeftEvent)) { d.onParticipantLeft = fn }
func (d *Dispatcher) SetOnUserNameUpdated(fn func(UserNameUpdatedEvent)) { d.onUserNameUpdated = fn }
func (d *Dispatcher) SetOnGameStarted(fn func(GameStartedEvent))         { d.onGameStarted = fn }
func (d *Dispatcher) SetOnNextQuestion(fn func(NextQuestionEvent))       { d.onNextQuestion = fn }
func (d *Dispatcher) SetOnGameOver(fn func(GameOverEvent))               { d.onGameOver = fn }
func (d *Dispatcher) SetOnGameCancelled(fn func(GameCancelledEvent))     { d.onGameCancelled = fn }
func (d *Dispatcher) SetOnError(fn func(error))                          { d.onError = fn }

// Dispatch decodes one frame and invokes the matching callback. A payload
// that fails to decode fires the error callback and is dropped; frames with
// an unknown tag are ignored.
func (d *Dispatcher) Dispatch(f Frame) {
	switch f.Type {
	case frameError:
		var pe ProtocolError
		if err := UnmarshalPayload(f.Payload, &pe); err != nil {
			d.fireError(WrapError(ErrorSerialization, "failed to unmarshal error frame", err))
			return
		}
		d.fireError(FromProtocolError(&pe))
	case frameParticipantUpdate:
		if d.onParticipantUpdate == nil {
			return
		}
		var ev ParticipantUpdateEvent
		if err := UnmarshalPayload(f.Payload, &ev); err != nil {
			d.fireError(WrapError(ErrorSerialization, "failed to unmarshal participant_update", err))
			return
		}
		d.onParticipantUpdate(ev)
	case frameParticipantLeft:
		if d.onParticipantLeft == nil {
			return
		}
		var ev ParticipantLeftEvent
		if err := UnmarshalPayload(f.Payload, &ev); err != nil {
			d.fireError(WrapError(ErrorSerialization, "failed to unmarshal participant_left", err))
			return
		}
		d.onParticipantLeft(ev)
	case frameUserNameUpdated:
		if d.onUserNameUpdated == nil {
			return
		}
		var ev UserNameUpdatedEvent
		if err := UnmarshalPayload(f.Payload, &ev); err != nil {
			d.fireError(WrapError(ErrorSerialization, "failed to unmarshal user_name_updated", err))
			return
		}
		d.onUserNameUpdated(ev)
	case frameGameStarted:
		if d.onGameStarted == nil {
			return
		}
		var ev GameStartedEvent
		if err := UnmarshalPayload(f.Payload, &ev); err != nil {
			d.fireError(WrapError(ErrorSerialization, "failed to unmarshal game_started", err))
			return
		}
		d.onGameStarted(ev)
	case frameNextQuestion:
		if d.onNextQuestion == nil {
			return
		}
		var ev NextQuestionEvent
		if err := UnmarshalPayload(f.Payload, &ev); err != nil {
			d.fireError(WrapError(ErrorSerialization, "failed to unmarshal next_question", err))
			return
		}
		d.onNextQuestion(ev)
	case frameGameOver:
		if d.onGameOver == nil {
			return
		}
		var ev GameOverEvent
		if err := UnmarshalPayload(f.Payload, &ev); err != nil {
			d.fireError(WrapError(ErrorSerialization, "failed to unmarshal game_over", err))
			return
		}
		d.onGameOver(ev)
	case frameGameCancelled:
		if d.onGameCancelled == nil {
			return
		}
		var ev GameCancelledEvent
		if err := UnmarshalPayload(f.Payload, &ev); err != nil {
			d.fireError(WrapError(ErrorSerialization, "failed to unmarshal game_cancelled", err))
			return
		}
		d.onGameCancelled(ev)
	}
}

func (d *Dispatcher) fireError(err error) {
	if d.onError != nil && err != nil {
		d.onError(err)
	}
}
