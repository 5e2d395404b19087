package lumatone

import "log"

// Driver is the public, shareable handle to a running driver runtime. It
// wraps only channels -- no mutex -- mirroring how the teacher's Board
// exposes readiness across goroutines purely through channel hand-off;
// the channels alone serialize access to the runtime's internal state.
type Driver struct {
	submissions chan CommandSubmission
	shutdown    chan struct{}
	done        chan struct{}
}

// NewDriver starts a runtime over transport and returns a handle to it.
// clock and logger may be nil, defaulting to the system clock and
// log.Default() respectively.
func NewDriver(transport Transport, clock Clock, logger *log.Logger) *Driver {
	if clock == nil {
		clock = NewSystemClock()
	}
	if logger == nil {
		logger = log.Default()
	}

	r := &runtime{
		transport:       transport,
		clock:           clock,
		logger:          logger,
		responseTimeout: DefaultResponseTimeout,
		retryTimeout:    DefaultRetryTimeout,
		submissions:     make(chan CommandSubmission),
		shutdown:        make(chan struct{}),
		done:            make(chan struct{}),
		state:           IdleState(),
	}
	go r.run()

	return &Driver{
		submissions: r.submissions,
		shutdown:    r.shutdown,
		done:        r.done,
	}
}

// Submit enqueues cmd and returns a channel that receives exactly one
// ResponseResult once the driver has processed it -- the Go stand-in for
// the original's future<Result<Response, DriverError>>.
func (d *Driver) Submit(cmd Command) <-chan ResponseResult {
	sub := newSubmission(0, cmd)

	select {
	case d.submissions <- sub:
		return sub.Response
	case <-d.done:
		ch := make(chan ResponseResult, 1)
		ch <- ResponseResult{Err: Err(KindDriverShutdown)}
		return ch
	}
}

// Shutdown signals the runtime to stop, waits for it to drain every
// outstanding waiter with a shutdown error, and returns once the runtime
// has exited. Safe to call more than once.
func (d *Driver) Shutdown() {
	select {
	case <-d.shutdown:
	default:
		close(d.shutdown)
	}
	<-d.done
}
