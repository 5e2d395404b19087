package lumatone

import (
	"log"
	"time"
)

// runtime is the single cooperative task that owns the Transport and
// drives the pure state machine. It selects over submissions, inbound
// frames, the two timers, and a shutdown signal, feeding exactly one
// Action into the state machine per iteration and then performing
// whatever effects fall out -- including any DispatchAction effects,
// which are fed back synchronously rather than going through the select
// loop again.
type runtime struct {
	transport Transport
	clock     Clock
	logger    *log.Logger

	responseTimeout time.Duration
	retryTimeout    time.Duration

	submissions chan CommandSubmission
	shutdown    chan struct{}
	done        chan struct{}

	state State
	nextID uint64

	responseTimer Timer
	retryTimer    Timer
}

func (r *runtime) run() {
	for {
		var responseC <-chan time.Time
		if r.responseTimer != nil {
			responseC = r.responseTimer.C()
		}
		var retryC <-chan time.Time
		if r.retryTimer != nil {
			retryC = r.retryTimer.C()
		}

		select {
		case sub := <-r.submissions:
			sub.ID = r.nextID
			r.nextID++
			r.feed(Action{Kind: ActionSubmitCommand, Submission: sub})

		case frame := <-r.transport.Inbound():
			if !isLumatone(frame) {
				r.logger.Printf("lumatone: dropping non-lumatone frame %s", HexDebugString(frame))
				continue
			}
			r.feed(Action{Kind: ActionMessageReceived, Bytes: frame})

		case <-responseC:
			r.responseTimer = nil
			r.feed(Action{Kind: ActionResponseTimedOut})

		case <-retryC:
			r.retryTimer = nil
			r.feed(Action{Kind: ActionReadyToRetry})

		case <-r.shutdown:
			r.drainShutdown()
			close(r.done)
			return
		}
	}
}

// feed applies action to the pure state machine and performs the
// resulting effects, including the new state's entry effects.
func (r *runtime) feed(a Action) {
	next, immediate := Transition(r.state, a)
	r.state = next
	r.perform(immediate)
	r.perform(EntryEffects(r.state))
}

func (r *runtime) perform(effects []Effect) {
	for _, e := range effects {
		switch e.Kind {
		case EffectSendMidiMessage:
			r.send(e.Submission)

		case EffectStartReceiveTimeout:
			r.stopResponseTimer()
			r.responseTimer = r.clock.NewTimer(r.responseTimeout)

		case EffectStartRetryTimeout:
			r.stopRetryTimer()
			r.retryTimer = r.clock.NewTimer(r.retryTimeout)

		case EffectNotifyMessageResponse:
			e.Submission.notify(e.Result)

		case EffectDispatchAction:
			r.feed(e.Action)

		case EffectLog:
			r.logger.Print(e.Message)
		}
	}
}

// send writes sub's command to the transport. A send error never fits
// the table's transition set (the table assumes the write itself cannot
// fail); it is handled here directly: the submission is failed and
// dropped, and the queue keeps processing.
func (r *runtime) send(sub CommandSubmission) {
	if err := r.transport.Send(sub.Command.Encode()); err != nil {
		r.logger.Printf("lumatone: send failed for submission %d: %v", sub.ID, err)
		sub.notify(ResponseResult{Err: wrapErr(KindDeviceSendError, "sending command", err)})
		rest := r.state.Queue
		if len(rest) > 0 {
			rest = rest[1:]
		}
		r.state = State{Phase: PhaseProcessingQueue, Queue: rest}
		r.perform(EntryEffects(r.state))
		return
	}
	r.feed(Action{Kind: ActionMessageSent, Submission: sub})
}

func (r *runtime) stopResponseTimer() {
	if r.responseTimer != nil {
		r.responseTimer.Stop()
		r.responseTimer = nil
	}
}

func (r *runtime) stopRetryTimer() {
	if r.retryTimer != nil {
		r.retryTimer.Stop()
		r.retryTimer = nil
	}
}

// drainShutdown notifies every submission still held by the state
// machine -- queued, in flight, or waiting to retry -- with a shutdown
// error, so no caller is left blocked on its response channel forever.
func (r *runtime) drainShutdown() {
	result := ResponseResult{Err: Err(KindDriverShutdown)}
	if r.state.InFlight != nil {
		r.state.InFlight.notify(result)
	}
	if r.state.ToRetry != nil {
		r.state.ToRetry.notify(result)
	}
	for _, sub := range r.state.Queue {
		sub.notify(result)
	}
	if err := r.transport.Close(); err != nil {
		r.logger.Printf("lumatone: error closing transport during shutdown: %v", err)
	}
}
