package lumatone

import (
	"fmt"
	"strings"
)

// Frame offsets after marker-strip.
const (
	offManufacturer0 = 0
	offManufacturer1 = 1
	offManufacturer2 = 2
	offBoardIndex    = 3
	offCommandID     = 4
	offStatus        = 5
	offPayload       = 6

	// minBodyLen is the minimum number of bytes the device expects in a
	// frame's body (everything after the start marker, before the end
	// marker); shorter frames are zero-padded up to this length. Needed
	// for device compatibility -- the vendor's own driver always sends
	// at least this many bytes.
	minBodyLen = 10
)

const (
	sysexStart byte = 0xf0
	sysexEnd   byte = 0xf7
)

// manufacturerID is the fixed 3-byte Lumatone SysEx manufacturer prefix.
var manufacturerID = [3]byte{0x00, 0x21, 0x50}

// StatusCode is the response status byte at offset 5 of a reply frame.
type StatusCode uint8

const (
	StatusNack  StatusCode = 0x00
	StatusAck   StatusCode = 0x01
	StatusBusy  StatusCode = 0x02
	StatusErr   StatusCode = 0x03
	StatusState StatusCode = 0x04
	// StatusUnknown is a sentinel for any status byte outside the known
	// set; it is never transmitted, only observed.
	StatusUnknown StatusCode = 0xff
)

func (s StatusCode) String() string {
	switch s {
	case StatusNack:
		return "Nack"
	case StatusAck:
		return "Ack"
	case StatusBusy:
		return "Busy"
	case StatusErr:
		return "Error"
	case StatusState:
		return "State"
	default:
		return "Unknown"
	}
}

func statusFromByte(b byte) StatusCode {
	switch b {
	case 0x00, 0x01, 0x02, 0x03, 0x04:
		return StatusCode(b)
	default:
		return StatusUnknown
	}
}

// HexDebugString renders msg as "[ xx xx xx ]" for log lines, mirroring
// what a failed-to-decode frame looks like in diagnostic output.
func HexDebugString(msg []byte) string {
	parts := make([]string, len(msg))
	for i, b := range msg {
		parts[i] = fmt.Sprintf("%x", b)
	}
	return "[ " + strings.Join(parts, " ") + " ]"
}

// stripMarkers removes a leading sysexStart and a trailing sysexEnd if
// present; it tolerates either or both being absent.
func stripMarkers(msg []byte) []byte {
	if len(msg) == 0 {
		return msg
	}
	start := 0
	if msg[0] == sysexStart {
		start = 1
	}
	end := len(msg)
	if end > start && msg[end-1] == sysexEnd {
		end--
	}
	return msg[start:end]
}

// isLumatone reports whether msg (markers optionally present) carries
// the Lumatone manufacturer id.
func isLumatone(msg []byte) bool {
	b := stripMarkers(msg)
	if len(b) < 3 {
		return false
	}
	return b[0] == manufacturerID[0] && b[1] == manufacturerID[1] && b[2] == manufacturerID[2]
}

// boardIndexOf extracts the board index from a marker-stripped-or-not
// frame.
func boardIndexOf(msg []byte) (BoardIndex, error) {
	b := stripMarkers(msg)
	if len(b) <= offBoardIndex {
		return 0, newErrf(KindMessageTooShort, "frame too short for board index: need %d bytes, have %d", offBoardIndex+1, len(b))
	}
	return NewBoardIndex(b[offBoardIndex])
}

// commandIDOf extracts the command id byte from a frame, without
// validating it against the closed catalog (use DecodeCommandID for
// that).
func commandIDOf(msg []byte) (byte, error) {
	b := stripMarkers(msg)
	if len(b) <= offCommandID {
		return 0, newErrf(KindMessageTooShort, "frame too short for command id: need %d bytes, have %d", offCommandID+1, len(b))
	}
	return b[offCommandID], nil
}

// statusOf extracts the response status byte, returning StatusUnknown
// (never an error) if the frame is too short to carry one -- status is
// only meaningful on responses, and a short frame is itself diagnosed
// elsewhere.
func statusOf(msg []byte) StatusCode {
	b := stripMarkers(msg)
	if len(b) <= offStatus {
		return StatusUnknown
	}
	return statusFromByte(b[offStatus])
}

// payloadOf extracts the payload (bytes after the status/command-id
// position) from a frame.
func payloadOf(msg []byte) ([]byte, error) {
	b := stripMarkers(msg)
	if len(b) <= offPayload {
		return nil, newErrf(KindMessageTooShort, "frame too short for payload: need %d bytes, have %d", offPayload+1, len(b))
	}
	return b[offPayload:], nil
}

// isResponseTo reports whether incoming is a reply to outgoing: same
// command id and board index, once both are marker-stripped.
func isResponseTo(outgoing, incoming []byte) bool {
	if !isLumatone(incoming) {
		return false
	}
	out := stripMarkers(outgoing)
	in := stripMarkers(incoming)
	if len(in) <= offCommandID || len(out) <= offCommandID {
		return false
	}
	return in[offCommandID] == out[offCommandID] && in[offBoardIndex] == out[offBoardIndex]
}

// encodeFrame builds a complete outgoing SysEx frame: start marker,
// manufacturer id, board index, command id, data, zero-padded so the
// body (everything after the start marker) is at least minBodyLen
// bytes, then the end marker.
func encodeFrame(board BoardIndex, cmd CommandID, data []byte) []byte {
	body := make([]byte, 0, minBodyLen+1)
	body = append(body, manufacturerID[0], manufacturerID[1], manufacturerID[2])
	body = append(body, board.Byte(), cmd.Byte())
	body = append(body, data...)

	if len(body) < minBodyLen {
		pad := minBodyLen - len(body)
		for i := 0; i < pad; i++ {
			body = append(body, 0)
		}
	}

	frame := make([]byte, 0, len(body)+2)
	frame = append(frame, sysexStart)
	frame = append(frame, body...)
	frame = append(frame, sysexEnd)
	return frame
}
