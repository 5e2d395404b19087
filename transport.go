package lumatone

// Transport is the capability the driver runtime needs from whatever
// physical link reaches the device: send one opaque SysEx frame, deliver
// inbound frames, and close. Concrete implementations live under
// transport/coremidi and transport/serial; the core never imports either.
type Transport interface {
	// Send writes one complete SysEx frame (start through end marker).
	Send(frame []byte) error

	// Inbound delivers complete inbound frames as they arrive. The
	// channel is closed when the transport can no longer deliver frames
	// (e.g. the underlying port was closed from outside the driver).
	Inbound() <-chan []byte

	Close() error
}
