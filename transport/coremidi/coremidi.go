// Package coremidi implements lumatone.Transport over real MIDI ports via
// gitlab.com/gomidi/midi/v2, using the rtmididrv backend for port access.
package coremidi

import (
	"fmt"
	"sync"

	"github.com/lumatone-midi/lumatone"
	midi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // registers the rtmidi driver
)

// Candidates pairs every available MIDI input with the output of the same
// index, one lumatone.Transport per pair -- a Lumatone device enumerates
// its in/out ports adjacently, so index-pairing is sufficient without
// trying to match port names.
func Candidates() ([]lumatone.Transport, error) {
	ins := midi.GetInPorts()
	outs := midi.GetOutPorts()

	n := len(ins)
	if len(outs) < n {
		n = len(outs)
	}

	candidates := make([]lumatone.Transport, 0, n)
	for i := 0; i < n; i++ {
		t, err := newTransport(ins[i], outs[i])
		if err != nil {
			for _, c := range candidates {
				_ = c.Close()
			}
			return nil, fmt.Errorf("coremidi: opening port pair %d (%s / %s): %w", i, ins[i], outs[i], err)
		}
		candidates = append(candidates, t)
	}
	return candidates, nil
}

// Discover probes Candidates() for a responding Lumatone device within
// lumatone.DiscoveryBudget, closing every non-winning candidate.
func Discover(clock lumatone.Clock) (lumatone.Transport, error) {
	candidates, err := Candidates()
	if err != nil {
		return nil, err
	}
	return lumatone.Discover(candidates, clock)
}

type transport struct {
	in  drivers.In
	out drivers.Out

	send func(midi.Message) error

	inbound chan []byte
	stop    func()

	closeOnce sync.Once
	closeErr  error
}

func newTransport(in drivers.In, out drivers.Out) (*transport, error) {
	send, err := midi.SendTo(out)
	if err != nil {
		return nil, err
	}

	t := &transport{
		in:      in,
		out:     out,
		send:    send,
		inbound: make(chan []byte, 16),
	}

	stop, err := midi.ListenTo(in, t.onMessage)
	if err != nil {
		return nil, err
	}
	t.stop = stop

	return t, nil
}

func (t *transport) onMessage(msg midi.Message, _ int32) {
	var data []byte
	if !msg.GetSysEx(&data) {
		return
	}
	frame := make([]byte, 0, len(data)+2)
	frame = append(frame, 0xf0)
	frame = append(frame, data...)
	frame = append(frame, 0xf7)

	select {
	case t.inbound <- frame:
	default:
		// Inbound buffer full: the runtime isn't keeping up. Drop rather
		// than block the MIDI library's listener goroutine.
	}
}

// Send strips the leading/trailing SysEx markers lumatone.Command.Encode
// produces -- midi.SysEx adds its own -- and transmits the body.
func (t *transport) Send(frame []byte) error {
	body := frame
	if len(body) > 0 && body[0] == 0xf0 {
		body = body[1:]
	}
	if len(body) > 0 && body[len(body)-1] == 0xf7 {
		body = body[:len(body)-1]
	}
	return t.send(midi.SysEx(body))
}

func (t *transport) Inbound() <-chan []byte {
	return t.inbound
}

func (t *transport) Close() error {
	t.closeOnce.Do(func() {
		if t.stop != nil {
			t.stop()
		}
		close(t.inbound)
	})
	return t.closeErr
}
