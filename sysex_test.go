package lumatone

import (
	"bytes"
	"testing"
)

func TestEncodeFramePadsToMinimumBodyLength(t *testing.T) {
	frame := encodeFrame(Server, cmdLumaPing, nil)

	if frame[0] != sysexStart || frame[len(frame)-1] != sysexEnd {
		t.Fatalf("frame missing start/end markers: % x", frame)
	}
	body := frame[1 : len(frame)-1]
	if len(body) != minBodyLen {
		t.Fatalf("body length = %d, want %d (manufacturer+board+cmd padded)", len(body), minBodyLen)
	}
}

func TestEncodeFrameDoesNotTruncateLongerPayloads(t *testing.T) {
	data := make([]byte, TableSize)
	frame := encodeFrame(Server, cmdSetVelocityConfig, data)
	body := frame[1 : len(frame)-1]
	want := 3 + 2 + len(data) // manufacturer + board/cmd + payload
	if len(body) != want {
		t.Fatalf("body length = %d, want %d", len(body), want)
	}
}

func TestStripMarkersToleratesEitherOrBothAbsent(t *testing.T) {
	full := []byte{sysexStart, 1, 2, 3, sysexEnd}
	noStart := full[1:]
	noEnd := full[:len(full)-1]
	bare := full[1 : len(full)-1]

	for _, msg := range [][]byte{full, noStart, noEnd, bare} {
		got := stripMarkers(msg)
		if !bytes.Equal(got, []byte{1, 2, 3}) {
			t.Fatalf("stripMarkers(% x) = % x, want [1 2 3]", msg, got)
		}
	}
}

func TestIsLumatoneRejectsForeignManufacturer(t *testing.T) {
	foreign := encodeFrame(Server, cmdLumaPing, nil)
	foreign[1] = 0x41 // corrupt the manufacturer id

	if isLumatone(foreign) {
		t.Fatalf("isLumatone should reject a frame with a foreign manufacturer id")
	}
}

func TestIsResponseToMatchesCommandAndBoard(t *testing.T) {
	out := encodeFrame(Octave2, cmdGetNoteConfig, nil)
	in := encodeFrame(Octave2, cmdGetNoteConfig, make([]byte, KeysPerBoard))
	if !isResponseTo(out, in) {
		t.Fatalf("isResponseTo should match same command id and board")
	}

	wrongBoard := encodeFrame(Octave3, cmdGetNoteConfig, make([]byte, KeysPerBoard))
	if isResponseTo(out, wrongBoard) {
		t.Fatalf("isResponseTo should reject a reply from a different board")
	}
}

func TestBoardIndexOfAndCommandIDOfRejectShortFrames(t *testing.T) {
	if _, err := boardIndexOf([]byte{sysexStart, 0, 0}); err == nil {
		t.Fatalf("expected error decoding board index from a truncated frame")
	}
	if _, err := commandIDOf([]byte{sysexStart, 0, 0, 0}); err == nil {
		t.Fatalf("expected error decoding command id from a truncated frame")
	}
}

func TestStatusOfUnknownOnShortFrame(t *testing.T) {
	if got := statusOf([]byte{sysexStart, 0, 0, 0, 0}); got != StatusUnknown {
		t.Fatalf("statusOf(short frame) = %s, want Unknown", got)
	}
}
