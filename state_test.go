package lumatone

import "testing"

func mustSubmission(t *testing.T, cmd Command) CommandSubmission {
	t.Helper()
	return newSubmission(1, cmd)
}

func TestTransitionIdleSubmitEntersProcessingQueue(t *testing.T) {
	sub := mustSubmission(t, Ping(1))
	next, effects := Transition(IdleState(), Action{Kind: ActionSubmitCommand, Submission: sub})

	if next.Phase != PhaseProcessingQueue {
		t.Fatalf("phase = %s, want ProcessingQueue", next.Phase)
	}
	if len(effects) != 0 {
		t.Fatalf("SubmitCommand transition itself should produce no effects, got %v", effects)
	}
	if len(next.Queue) != 1 || next.Queue[0].Command.Kind != KindPing {
		t.Fatalf("queue = %v", next.Queue)
	}
}

func TestEntryEffectsProcessingQueueSendsHeadOfQueue(t *testing.T) {
	sub := mustSubmission(t, Ping(1))
	s := State{Phase: PhaseProcessingQueue, Queue: []CommandSubmission{sub}}

	effects := EntryEffects(s)
	if len(effects) != 1 || effects[0].Kind != EffectSendMidiMessage {
		t.Fatalf("effects = %v, want a single SendMidiMessage", effects)
	}
	if effects[0].Submission.ID != sub.ID {
		t.Fatalf("submission mismatch")
	}
}

func TestEntryEffectsProcessingQueueEmptyDispatchesQueueEmpty(t *testing.T) {
	effects := EntryEffects(State{Phase: PhaseProcessingQueue})
	if len(effects) != 1 || effects[0].Kind != EffectDispatchAction || effects[0].Action.Kind != ActionQueueEmpty {
		t.Fatalf("effects = %v, want a single QueueEmpty dispatch", effects)
	}
}

func TestTransitionMessageSentEntersAwaitingResponse(t *testing.T) {
	sub := mustSubmission(t, Ping(1))
	s := State{Phase: PhaseProcessingQueue, Queue: []CommandSubmission{sub}}

	next, _ := Transition(s, Action{Kind: ActionMessageSent, Submission: sub})
	if next.Phase != PhaseAwaitingResponse {
		t.Fatalf("phase = %s, want AwaitingResponse", next.Phase)
	}
	if next.InFlight == nil || next.InFlight.ID != sub.ID {
		t.Fatalf("InFlight not set to the sent submission")
	}
	if len(next.Queue) != 0 {
		t.Fatalf("queue should be drained of its head, got %v", next.Queue)
	}
}

func TestEntryEffectsAwaitingResponseStartsReceiveTimeout(t *testing.T) {
	effects := EntryEffects(State{Phase: PhaseAwaitingResponse})
	if len(effects) != 1 || effects[0].Kind != EffectStartReceiveTimeout {
		t.Fatalf("effects = %v, want StartReceiveTimeout", effects)
	}
}

func TestProcessingResponseAckDispatchesDecodedResponse(t *testing.T) {
	cmd := GetFirmwareRevision()
	sub := mustSubmission(t, cmd)
	// A well-formed Ack response frame: manufacturer, board, cmd id,
	// status, payload.
	frame := []byte{sysexStart, 0x00, 0x21, 0x50, Server.Byte(), cmdGetFirmwareRevision.Byte(), byte(StatusAck), 1, 2, 3, sysexEnd}

	s := State{Phase: PhaseProcessingResponse, InFlight: &sub, ResponseBytes: frame}
	effects := EntryEffects(s)

	if len(effects) != 2 {
		t.Fatalf("effects = %v, want [notify, dispatch ResponseDispatched]", effects)
	}
	if effects[0].Kind != EffectNotifyMessageResponse {
		t.Fatalf("effects[0].Kind = %v, want EffectNotifyMessageResponse", effects[0].Kind)
	}
	if effects[0].Result.Err != nil {
		t.Fatalf("unexpected decode error: %v", effects[0].Result.Err)
	}
	if effects[0].Result.Response.FirmwareMajor != 1 {
		t.Fatalf("got %+v", effects[0].Result.Response)
	}
	if effects[1].Kind != EffectDispatchAction || effects[1].Action.Kind != ActionResponseDispatched {
		t.Fatalf("effects[1] = %v, want ResponseDispatched dispatch", effects[1])
	}
}

func TestProcessingResponseBusyIncrementsRetriesAndWaits(t *testing.T) {
	sub := mustSubmission(t, Ping(1))
	s := State{Phase: PhaseProcessingResponse, InFlight: &sub}

	next, effects := Transition(s, Action{Kind: ActionDeviceBusy})
	if next.Phase != PhaseWaitingToRetry {
		t.Fatalf("phase = %s, want WaitingToRetry", next.Phase)
	}
	if next.ToRetry == nil || next.ToRetry.Retries != 1 {
		t.Fatalf("ToRetry = %+v, want Retries=1", next.ToRetry)
	}
	if len(effects) != 0 {
		t.Fatalf("expected no immediate effects, got %v", effects)
	}
}

func TestProcessingResponseBusyAbandonsAfterMaxRetries(t *testing.T) {
	sub := mustSubmission(t, Ping(1))
	sub.Retries = DefaultMaxRetries
	s := State{Phase: PhaseProcessingResponse, InFlight: &sub}

	next, effects := Transition(s, Action{Kind: ActionDeviceBusy})
	if next.Phase != PhaseProcessingQueue {
		t.Fatalf("phase = %s, want ProcessingQueue (abandoned)", next.Phase)
	}
	if len(effects) != 1 || effects[0].Kind != EffectNotifyMessageResponse {
		t.Fatalf("effects = %v, want a single abandon notification", effects)
	}
	if effects[0].Result.Err == nil {
		t.Fatalf("expected a DeviceBusyAbandoned error")
	}
}

func TestAwaitingResponseTimeoutNotifiesAndAdvances(t *testing.T) {
	sub := mustSubmission(t, Ping(1))
	s := State{Phase: PhaseAwaitingResponse, InFlight: &sub}

	next, effects := Transition(s, Action{Kind: ActionResponseTimedOut})
	if next.Phase != PhaseProcessingQueue {
		t.Fatalf("phase = %s, want ProcessingQueue", next.Phase)
	}
	if len(effects) != 1 || effects[0].Kind != EffectNotifyMessageResponse {
		t.Fatalf("effects = %v", effects)
	}
	if effects[0].Result.Err == nil {
		t.Fatalf("expected a timeout error")
	}
}

func TestWaitingToRetryReadyRequeuesAtFront(t *testing.T) {
	retry := mustSubmission(t, Ping(1))
	queued := mustSubmission(t, Ping(2))
	s := State{Phase: PhaseWaitingToRetry, ToRetry: &retry, Queue: []CommandSubmission{queued}}

	next, _ := Transition(s, Action{Kind: ActionReadyToRetry})
	if next.Phase != PhaseProcessingQueue {
		t.Fatalf("phase = %s, want ProcessingQueue", next.Phase)
	}
	if len(next.Queue) != 2 || next.Queue[0].ID != retry.ID {
		t.Fatalf("retry should be requeued ahead of the existing queue, got %v", next.Queue)
	}
}

func TestStraySignalsOutsideTheirStateAreNoOps(t *testing.T) {
	idle := IdleState()

	next, effects := Transition(idle, Action{Kind: ActionMessageReceived, Bytes: []byte{1}})
	if next.Phase != PhaseIdle {
		t.Fatalf("a stray MessageReceived should not change the phase, got %s", next.Phase)
	}
	if len(effects) != 1 || effects[0].Kind != EffectLog {
		t.Fatalf("expected a single log effect, got %v", effects)
	}
}

func TestUntabulatedTransitionFailsWithInvalidStateTransition(t *testing.T) {
	next, effects := Transition(IdleState(), Action{Kind: ActionDeviceBusy})
	if next.Phase != PhaseFailed {
		t.Fatalf("phase = %s, want Failed", next.Phase)
	}
	if next.Err == nil {
		t.Fatalf("expected Err to be set")
	}
	if len(effects) != 1 || effects[0].Kind != EffectLog {
		t.Fatalf("expected a single log effect, got %v", effects)
	}
}
