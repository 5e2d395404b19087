package lumatone

import (
	"log"
	"testing"
	"time"
)

// fakeTransport is an in-memory Transport double: Send records frames on
// a channel the test can drain, and pushReply feeds bytes back through
// Inbound as if the device had replied.
type fakeTransport struct {
	sent    chan []byte
	inbound chan []byte
	closed  chan struct{}
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		sent:    make(chan []byte, 16),
		inbound: make(chan []byte, 16),
		closed:  make(chan struct{}),
	}
}

func (f *fakeTransport) Send(frame []byte) error {
	f.sent <- frame
	return nil
}

func (f *fakeTransport) Inbound() <-chan []byte { return f.inbound }

func (f *fakeTransport) Close() error {
	select {
	case <-f.closed:
	default:
		close(f.closed)
	}
	return nil
}

// manualTimer is a Timer whose firing is entirely test-controlled.
type manualTimer struct {
	c       chan time.Time
	stopped chan struct{}
}

func newManualTimer() *manualTimer {
	return &manualTimer{c: make(chan time.Time, 1), stopped: make(chan struct{}, 1)}
}

func (m *manualTimer) C() <-chan time.Time { return m.c }

func (m *manualTimer) Stop() bool {
	select {
	case m.stopped <- struct{}{}:
	default:
	}
	return true
}

func (m *manualTimer) fire() { m.c <- time.Time{} }

// manualClock hands out manualTimers and records every one it creates, in
// creation order, so a test can reach in and fire the timer the runtime
// is currently waiting on.
type manualClock struct {
	timers chan *manualTimer
}

func newManualClock() *manualClock {
	return &manualClock{timers: make(chan *manualTimer, 16)}
}

func (c *manualClock) Now() time.Time { return time.Time{} }

func (c *manualClock) NewTimer(d time.Duration) Timer {
	t := newManualTimer()
	c.timers <- t
	return t
}

func (c *manualClock) nextTimer(t *testing.T) *manualTimer {
	t.Helper()
	select {
	case timer := <-c.timers:
		return timer
	case <-time.After(time.Second):
		t.Fatal("no timer was created in time")
		return nil
	}
}

func newTestDriver(transport Transport, clock Clock) *Driver {
	r := &runtime{
		transport:       transport,
		clock:           clock,
		logger:          log.Default(),
		responseTimeout: DefaultResponseTimeout,
		retryTimeout:    DefaultRetryTimeout,
		submissions:     make(chan CommandSubmission),
		shutdown:        make(chan struct{}),
		done:            make(chan struct{}),
		state:           IdleState(),
	}
	go r.run()
	return &Driver{submissions: r.submissions, shutdown: r.shutdown, done: r.done}
}

func TestDriverSubmitSendsFrameAndDeliversAckResponse(t *testing.T) {
	transport := newFakeTransport()
	clock := newManualClock()
	d := newTestDriver(transport, clock)
	defer d.Shutdown()

	resultCh := d.Submit(GetSerialID())

	var sentFrame []byte
	select {
	case sentFrame = <-transport.sent:
	case <-time.After(time.Second):
		t.Fatal("command was never sent to the transport")
	}
	if !isLumatone(sentFrame) {
		t.Fatalf("sent frame is not a lumatone frame: % x", sentFrame)
	}

	clock.nextTimer(t) // the receive timeout started on entering AwaitingResponse

	reply := []byte{
		sysexStart, 0x00, 0x21, 0x50, Server.Byte(), cmdGetSerialIdentity.Byte(), byte(StatusAck),
		1, 2, 3, 4, 5, 6, sysexEnd,
	}
	transport.inbound <- reply

	select {
	case result := <-resultCh:
		if result.Err != nil {
			t.Fatalf("unexpected error: %v", result.Err)
		}
		if result.Response.Kind != RespSerialID {
			t.Fatalf("got response kind %s, want SerialID", result.Response.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("never received a response result")
	}
}

func TestDriverAtMostOneSubmissionInFlight(t *testing.T) {
	transport := newFakeTransport()
	clock := newManualClock()
	d := newTestDriver(transport, clock)
	defer d.Shutdown()

	first := d.Submit(Ping(1))
	second := d.Submit(Ping(2))

	var firstFrame []byte
	select {
	case firstFrame = <-transport.sent:
	case <-time.After(time.Second):
		t.Fatal("first command never sent")
	}

	select {
	case <-transport.sent:
		t.Fatal("a second command should not be sent while the first is in flight")
	case <-time.After(50 * time.Millisecond):
	}

	clock.nextTimer(t)

	echo := decodePongEcho(firstFrame)
	transport.inbound <- echo

	select {
	case result := <-first:
		if result.Err != nil {
			t.Fatalf("unexpected error: %v", result.Err)
		}
	case <-time.After(time.Second):
		t.Fatal("first submission never resolved")
	}

	select {
	case secondFrame := <-transport.sent:
		if !isLumatone(secondFrame) {
			t.Fatalf("second frame is not a lumatone frame")
		}
	case <-time.After(time.Second):
		t.Fatal("second command was never sent once the first completed")
	}

	clock.nextTimer(t)
	select {
	case <-second:
	default:
	}
}

func TestDriverResponseTimeoutFailsWaiterAndResumesQueue(t *testing.T) {
	transport := newFakeTransport()
	clock := newManualClock()
	d := newTestDriver(transport, clock)
	defer d.Shutdown()

	resultCh := d.Submit(Ping(1))

	select {
	case <-transport.sent:
	case <-time.After(time.Second):
		t.Fatal("command never sent")
	}

	clock.nextTimer(t) // the receive timeout started for the first command

	// Queue a second command behind the in-flight one. Re-entering
	// AwaitingResponse restarts the receive timeout, so the live timer is
	// the one created after this submit.
	d.Submit(Ping(2))
	timer := clock.nextTimer(t)
	timer.fire()

	select {
	case result := <-resultCh:
		if result.Err == nil {
			t.Fatalf("expected a timeout error")
		}
	case <-time.After(time.Second):
		t.Fatal("never received a timeout result")
	}

	select {
	case <-transport.sent:
	case <-time.After(time.Second):
		t.Fatal("queued command was never sent after the timeout")
	}
}

func TestDriverShutdownDrainsWaitersWithShutdownError(t *testing.T) {
	transport := newFakeTransport()
	clock := newManualClock()
	d := newTestDriver(transport, clock)

	resultCh := d.Submit(Ping(1))

	select {
	case <-transport.sent:
	case <-time.After(time.Second):
		t.Fatal("command never sent")
	}

	d.Shutdown()

	select {
	case result := <-resultCh:
		if result.Err == nil {
			t.Fatalf("expected a shutdown error")
		}
	case <-time.After(time.Second):
		t.Fatal("waiter was never drained on shutdown")
	}

	// A second Shutdown call, and a Submit after shutdown, must not hang.
	d.Shutdown()
	after := d.Submit(Ping(2))
	select {
	case result := <-after:
		if result.Err == nil {
			t.Fatalf("expected a shutdown error for a post-shutdown submit")
		}
	case <-time.After(time.Second):
		t.Fatal("post-shutdown submit never resolved")
	}
}

// decodePongEcho builds the Pong reply frame for a Ping frame previously
// produced by Command.Encode, mirroring how the real device echoes the
// ping payload back.
func decodePongEcho(pingFrame []byte) []byte {
	// Command frames carry no status byte, so their payload starts one
	// byte earlier than a response's (offStatus, not offPayload).
	body := stripMarkers(pingFrame)
	payload := body[offStatus : offStatus+4]
	reply := []byte{sysexStart, 0x00, 0x21, 0x50, Server.Byte(), cmdLumaPing.Byte(), byte(StatusAck)}
	reply = append(reply, payload...)
	reply = append(reply, sysexEnd)
	return reply
}
