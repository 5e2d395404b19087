// Package serial implements lumatone.Transport over a raw USB-serial
// bridge, for Lumatone units reached without a MIDI driver in between.
package serial

import (
	"bufio"
	"fmt"
	"sync"

	"github.com/daedaluz/goserial"
	"github.com/lumatone-midi/lumatone"
)

// defaultBaud matches the rate the Lumatone firmware's serial bridge
// expects.
const defaultBaud = serial.B115200

const (
	sysexStart = 0xf0
	sysexEnd   = 0xf7
)

type transport struct {
	port *serial.Port
	buf  *bufio.Reader

	inbound chan []byte
	done    chan struct{}

	closeOnce sync.Once
}

// Open opens device as a Lumatone serial transport: raw mode, the
// firmware's fixed baud rate, buffered framed reads of F0..F7 SysEx
// messages running in a background goroutine.
func Open(device string) (lumatone.Transport, error) {
	opts := serial.NewOptions().SetReadTimeout(-1)
	port, err := serial.Open(device, opts)
	if err != nil {
		return nil, fmt.Errorf("serial: opening %s: %w", device, err)
	}

	if err := configure(port); err != nil {
		port.Close()
		return nil, fmt.Errorf("serial: configuring %s: %w", device, err)
	}

	if err := port.Flush(serial.TCIOFLUSH); err != nil {
		port.Close()
		return nil, fmt.Errorf("serial: flushing %s: %w", device, err)
	}

	t := &transport{
		port:    port,
		buf:     bufio.NewReader(port),
		inbound: make(chan []byte, 16),
		done:    make(chan struct{}),
	}
	go t.run()
	return t, nil
}

func configure(port *serial.Port) error {
	attrs, err := port.GetAttr()
	if err != nil {
		return err
	}
	attrs.MakeRaw()
	attrs.SetSpeed(defaultBaud)
	return port.SetAttr(serial.TCSANOW, attrs)
}

// Candidates opens one transport per device path, closing every one
// already opened if a later path fails.
func Candidates(devicePaths []string) ([]lumatone.Transport, error) {
	candidates := make([]lumatone.Transport, 0, len(devicePaths))
	for _, path := range devicePaths {
		t, err := Open(path)
		if err != nil {
			for _, c := range candidates {
				_ = c.Close()
			}
			return nil, err
		}
		candidates = append(candidates, t)
	}
	return candidates, nil
}

// Discover probes Candidates(devicePaths) for a responding Lumatone
// device within lumatone.DiscoveryBudget.
func Discover(devicePaths []string, clock lumatone.Clock) (lumatone.Transport, error) {
	candidates, err := Candidates(devicePaths)
	if err != nil {
		return nil, err
	}
	return lumatone.Discover(candidates, clock)
}

func (t *transport) run() {
	for {
		b, err := t.buf.ReadByte()
		if err != nil {
			return
		}
		if b != sysexStart {
			continue
		}
		frame, err := t.buf.ReadBytes(sysexEnd)
		if err != nil {
			return
		}
		full := append([]byte{sysexStart}, frame...)

		select {
		case t.inbound <- full:
		case <-t.done:
			return
		}
	}
}

func (t *transport) Send(frame []byte) error {
	_, err := t.port.Write(frame)
	return err
}

func (t *transport) Inbound() <-chan []byte {
	return t.inbound
}

func (t *transport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.done)
		_ = t.port.Flush(serial.TCIOFLUSH)
		err = t.port.Close()
		close(t.inbound)
	})
	return err
}
