package lumatone

import "time"

// DefaultResponseTimeout is how long AwaitingResponse waits for a reply
// before the submission is dropped with a timed-out error.
const DefaultResponseTimeout = 30 * time.Second

// DefaultRetryTimeout is how long WaitingToRetry waits after a Busy/State
// reply before resubmitting.
const DefaultRetryTimeout = 3 * time.Second

// DefaultMaxRetries bounds how many times a single submission is retried
// after Busy/State replies before it is abandoned.
const DefaultMaxRetries = 10

// Phase is the tag of the driver's pure state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseProcessingQueue
	PhaseAwaitingResponse
	PhaseWaitingToRetry
	PhaseProcessingResponse
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseProcessingQueue:
		return "ProcessingQueue"
	case PhaseAwaitingResponse:
		return "AwaitingResponse"
	case PhaseWaitingToRetry:
		return "WaitingToRetry"
	case PhaseProcessingResponse:
		return "ProcessingResponse"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// State is the driver's entire pure state: no I/O, no goroutines, no
// wall-clock reads. The runtime (driver.go) is the only thing that ever
// performs the effects this state's entry step produces.
type State struct {
	Phase Phase

	Queue    []CommandSubmission
	InFlight *CommandSubmission
	ToRetry  *CommandSubmission

	ResponseBytes []byte

	Err error
}

// IdleState returns the initial state.
func IdleState() State {
	return State{Phase: PhaseIdle}
}

func (s State) String() string {
	return s.Phase.String()
}

// ActionKind is the tag of a pure-machine input.
type ActionKind uint8

const (
	ActionSubmitCommand ActionKind = iota
	ActionMessageSent
	ActionMessageReceived
	ActionDeviceBusy
	ActionResponseDispatched
	ActionResponseTimedOut
	ActionReadyToRetry
	ActionQueueEmpty
)

// Action is one input to the pure state machine.
type Action struct {
	Kind       ActionKind
	Submission CommandSubmission // SubmitCommand, MessageSent
	Bytes      []byte            // MessageReceived
}

func (a Action) String() string {
	switch a.Kind {
	case ActionSubmitCommand:
		return "SubmitCommand"
	case ActionMessageSent:
		return "MessageSent"
	case ActionMessageReceived:
		return "MessageReceived"
	case ActionDeviceBusy:
		return "DeviceBusy"
	case ActionResponseDispatched:
		return "ResponseDispatched"
	case ActionResponseTimedOut:
		return "ResponseTimedOut"
	case ActionReadyToRetry:
		return "ReadyToRetry"
	case ActionQueueEmpty:
		return "QueueEmpty"
	default:
		return "Unknown"
	}
}

// EffectKind is the tag of an output the runtime must perform.
type EffectKind uint8

const (
	EffectSendMidiMessage EffectKind = iota
	EffectStartReceiveTimeout
	EffectStartRetryTimeout
	EffectNotifyMessageResponse
	EffectDispatchAction
	EffectLog
)

// Effect is one output produced by a state transition or entry step.
type Effect struct {
	Kind       EffectKind
	Submission CommandSubmission // SendMidiMessage, NotifyMessageResponse
	Result     ResponseResult    // NotifyMessageResponse
	Action     Action            // DispatchAction
	Message    string            // Log
}

func dispatch(a Action) Effect { return Effect{Kind: EffectDispatchAction, Action: a} }
func logEffect(msg string) Effect { return Effect{Kind: EffectLog, Message: msg} }
func notifyEffect(sub CommandSubmission, result ResponseResult) Effect {
	return Effect{Kind: EffectNotifyMessageResponse, Submission: sub, Result: result}
}

// Transition applies action to state and returns the next state plus any
// effects produced directly by the transition itself (as opposed to the
// new state's entry effects, which the caller must separately obtain via
// EntryEffects and which this function does not include).
//
// Pairings absent from the transition table move to Failed with
// InvalidStateTransition, except for the three pairings the table calls
// out as no-ops (a stray MessageReceived/ResponseTimedOut/ReadyToRetry
// arriving in a state that isn't waiting for it): those are logged and
// leave the state unchanged.
func Transition(s State, a Action) (State, []Effect) {
	switch {
	case s.Phase == PhaseIdle && a.Kind == ActionSubmitCommand:
		return State{Phase: PhaseProcessingQueue, Queue: []CommandSubmission{a.Submission}}, nil

	case s.Phase == PhaseProcessingQueue && a.Kind == ActionSubmitCommand:
		next := s
		next.Queue = append(append([]CommandSubmission{}, s.Queue...), a.Submission)
		return next, nil

	case s.Phase == PhaseAwaitingResponse && a.Kind == ActionSubmitCommand:
		next := s
		next.Queue = append(append([]CommandSubmission{}, s.Queue...), a.Submission)
		return next, nil

	case s.Phase == PhaseWaitingToRetry && a.Kind == ActionSubmitCommand:
		next := s
		next.Queue = append(append([]CommandSubmission{}, s.Queue...), a.Submission)
		return next, nil

	case s.Phase == PhaseProcessingResponse && a.Kind == ActionSubmitCommand:
		next := s
		next.Queue = append(append([]CommandSubmission{}, s.Queue...), a.Submission)
		return next, nil

	case s.Phase == PhaseProcessingQueue && a.Kind == ActionMessageSent:
		sent := a.Submission
		rest := s.Queue
		if len(rest) > 0 {
			rest = rest[1:]
		}
		return State{Phase: PhaseAwaitingResponse, Queue: rest, InFlight: &sent}, nil

	case s.Phase == PhaseAwaitingResponse && a.Kind == ActionMessageReceived:
		return State{Phase: PhaseProcessingResponse, Queue: s.Queue, InFlight: s.InFlight, ResponseBytes: a.Bytes}, nil

	case s.Phase == PhaseProcessingResponse && a.Kind == ActionResponseDispatched:
		return State{Phase: PhaseProcessingQueue, Queue: s.Queue}, nil

	case s.Phase == PhaseProcessingResponse && a.Kind == ActionDeviceBusy:
		retry := *s.InFlight
		retry.Retries++
		if retry.Retries > DefaultMaxRetries {
			effects := []Effect{notifyEffect(retry, ResponseResult{Err: Err(KindDeviceBusyAbandoned)})}
			return State{Phase: PhaseProcessingQueue, Queue: s.Queue}, effects
		}
		return State{Phase: PhaseWaitingToRetry, Queue: s.Queue, ToRetry: &retry}, nil

	case s.Phase == PhaseAwaitingResponse && a.Kind == ActionResponseTimedOut:
		effects := []Effect{notifyEffect(*s.InFlight, ResponseResult{Err: Err(KindResponseTimedOut)})}
		return State{Phase: PhaseProcessingQueue, Queue: s.Queue}, effects

	case s.Phase == PhaseWaitingToRetry && a.Kind == ActionReadyToRetry:
		queue := append([]CommandSubmission{*s.ToRetry}, s.Queue...)
		return State{Phase: PhaseProcessingQueue, Queue: queue}, nil

	case s.Phase == PhaseProcessingQueue && a.Kind == ActionQueueEmpty && len(s.Queue) == 0:
		return State{Phase: PhaseIdle}, nil

	case a.Kind == ActionMessageReceived && s.Phase != PhaseAwaitingResponse:
		return s, []Effect{logEffect("MessageReceived ignored outside AwaitingResponse")}

	case a.Kind == ActionResponseTimedOut && s.Phase != PhaseAwaitingResponse:
		return s, []Effect{logEffect("ResponseTimedOut ignored outside AwaitingResponse")}

	case a.Kind == ActionReadyToRetry && s.Phase != PhaseWaitingToRetry:
		return s, []Effect{logEffect("ReadyToRetry ignored outside WaitingToRetry")}

	default:
		failed := State{Phase: PhaseFailed, Err: newErrf(KindInvalidStateTransition, "no transition for %s in %s", a, s)}
		return failed, []Effect{logEffect(failed.Err.Error())}
	}
}

// EntryEffects computes the effects produced by entering s, per the
// entry-effect table. It is pure: decoding a response payload here does
// not perform I/O, only interprets bytes already delivered.
func EntryEffects(s State) []Effect {
	switch s.Phase {
	case PhaseIdle:
		return nil

	case PhaseProcessingQueue:
		if len(s.Queue) == 0 {
			return []Effect{dispatch(Action{Kind: ActionQueueEmpty})}
		}
		return []Effect{{Kind: EffectSendMidiMessage, Submission: s.Queue[0]}}

	case PhaseAwaitingResponse:
		return []Effect{{Kind: EffectStartReceiveTimeout}}

	case PhaseWaitingToRetry:
		return []Effect{{Kind: EffectStartRetryTimeout}}

	case PhaseProcessingResponse:
		return processingResponseEntryEffects(s)

	case PhaseFailed:
		return []Effect{logEffect("driver failed: " + s.Err.Error())}

	default:
		return nil
	}
}

func processingResponseEntryEffects(s State) []Effect {
	inFlight := *s.InFlight
	var warn []Effect
	if !isResponseTo(inFlight.Command.Encode(), s.ResponseBytes) {
		// Logged, not fatal: the response is still processed against
		// whatever command is in flight, matching the table's "warn
		// otherwise" rather than aborting the exchange.
		warn = []Effect{logEffect("response " + HexDebugString(s.ResponseBytes) + " does not match in-flight command " + inFlight.Command.String())}
	}

	status := statusOf(s.ResponseBytes)
	switch status {
	case StatusAck:
		resp, err := DecodeResponse(s.ResponseBytes)
		if err != nil {
			return append(warn,
				notifyEffect(inFlight, ResponseResult{Err: wrapErr(KindResponseDecodingError, "decoding response body", err)}),
				dispatch(Action{Kind: ActionResponseDispatched}),
			)
		}
		return append(warn,
			notifyEffect(inFlight, ResponseResult{Response: resp}),
			dispatch(Action{Kind: ActionResponseDispatched}),
		)

	case StatusNack, StatusErr:
		return append(warn,
			notifyEffect(inFlight, ResponseResult{Err: Err(KindInvalidResponseMessage)}),
			dispatch(Action{Kind: ActionResponseDispatched}),
		)

	case StatusBusy, StatusState:
		return append(warn, dispatch(Action{Kind: ActionDeviceBusy}))

	default: // StatusUnknown
		// The base protocol leaves an Unknown status unanswered; this
		// driver instead surfaces it to the waiter as an invalid
		// response and advances the queue, so a malformed status byte
		// can never leave a caller waiting forever.
		return append(warn,
			notifyEffect(inFlight, ResponseResult{Err: Err(KindInvalidResponseMessage)}),
			dispatch(Action{Kind: ActionResponseDispatched}),
		)
	}
}
