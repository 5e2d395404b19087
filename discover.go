package lumatone

import "time"

// DiscoveryBudget is the wall-clock limit for Discover to find a
// responding device before giving up.
const DiscoveryBudget = 30 * time.Second

type discoveryHit struct {
	index     int
	transport Transport
}

// Discover probes every candidate transport concurrently -- each one
// representing one (out, in) port pair already opened by the caller's
// transport package (coremidi enumerates real MIDI ports, serial
// enumerates configured device paths) -- by sending a Ping whose payload
// encodes the candidate's index, and returns the first candidate whose
// Inbound stream echoes back a matching Pong. Candidates that don't win
// are closed before returning.
func Discover(candidates []Transport, clock Clock) (Transport, error) {
	if len(candidates) == 0 {
		return nil, newErr(KindDeviceDetectionFailed, "no transport candidates to probe")
	}

	found := make(chan discoveryHit, len(candidates))
	for i, t := range candidates {
		go probeCandidate(i, t, found)
	}

	budget := clock.NewTimer(DiscoveryBudget)
	defer budget.Stop()

	select {
	case hit := <-found:
		for i, t := range candidates {
			if i != hit.index {
				_ = t.Close()
			}
		}
		return hit.transport, nil

	case <-budget.C():
		for _, t := range candidates {
			_ = t.Close()
		}
		return nil, newErr(KindDeviceDetectionFailed, "no device responded within discovery budget")
	}
}

func probeCandidate(index int, t Transport, found chan<- discoveryHit) {
	ping := Ping(uint32(index)).Encode()
	if err := t.Send(ping); err != nil {
		return
	}
	for frame := range t.Inbound() {
		resp, err := DecodeResponse(frame)
		if err != nil {
			continue
		}
		if resp.Kind == RespPong && resp.PingValue == uint32(index) {
			found <- discoveryHit{index: index, transport: t}
			return
		}
	}
}
