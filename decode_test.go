package lumatone

import "testing"

// encodeResponseFrame builds a reply frame by hand, mirroring encodeFrame
// but with the status byte a response carries and a command frame does
// not: start marker, manufacturer id, board, command id, status, payload,
// end marker.
func encodeResponseFrame(board BoardIndex, cmd CommandID, status StatusCode, payload []byte) []byte {
	frame := []byte{sysexStart, manufacturerID[0], manufacturerID[1], manufacturerID[2], board.Byte(), cmd.Byte(), byte(status)}
	frame = append(frame, payload...)
	frame = append(frame, sysexEnd)
	return frame
}

func TestDecodeResponseBoardOctave7BitCopiesPayloadBytesUnchanged(t *testing.T) {
	payload := make([]byte, KeysPerBoard)
	for i := range payload {
		payload[i] = byte(i)
	}
	frame := encodeResponseFrame(Octave2, cmdGetNoteConfig, StatusAck, payload)

	resp, err := DecodeResponse(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Kind != RespNoteConfig {
		t.Fatalf("Kind = %s, want NoteConfig", resp.Kind)
	}
	if resp.Board != Octave2 {
		t.Fatalf("Board = %s, want Octave2", resp.Board)
	}
	if len(resp.Bytes) != KeysPerBoard {
		t.Fatalf("len(Bytes) = %d, want %d (no nibble-pair halving)", len(resp.Bytes), KeysPerBoard)
	}
	for i, b := range resp.Bytes {
		if b != payload[i] {
			t.Fatalf("Bytes[%d] = %d, want %d (untransformed payload byte)", i, b, payload[i])
		}
	}
}

func TestDecodeResponseKeyTypeConfigAlsoUses7BitPath(t *testing.T) {
	payload := make([]byte, KeysPerBoard)
	for i := range payload {
		payload[i] = byte(i % 16)
	}
	frame := encodeResponseFrame(Octave1, cmdGetKeytypeConfig, StatusAck, payload)

	resp, err := DecodeResponse(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Kind != RespKeyTypeConfig {
		t.Fatalf("Kind = %s, want KeyTypeConfig", resp.Kind)
	}
	if len(resp.Bytes) != KeysPerBoard || resp.Bytes[1] != payload[1] {
		t.Fatalf("got %v, want a verbatim copy of %v", resp.Bytes, payload)
	}
}

func TestDecodeResponseBoardOctave8BitUnpacksNibblePairs(t *testing.T) {
	payload := make([]byte, KeysPerBoard*2)
	for i := 0; i < KeysPerBoard; i++ {
		payload[i*2] = 0xa
		payload[i*2+1] = 0x5
	}
	frame := encodeResponseFrame(Octave3, cmdGetMaxThreshold, StatusAck, payload)

	resp, err := DecodeResponse(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Kind != RespKeyMaxThresholds {
		t.Fatalf("Kind = %s, want KeyMaxThresholds", resp.Kind)
	}
	if len(resp.Bytes) != KeysPerBoard {
		t.Fatalf("len(Bytes) = %d, want %d (nibble pairs halved)", len(resp.Bytes), KeysPerBoard)
	}
	for i, b := range resp.Bytes {
		if b != 0xa5 {
			t.Fatalf("Bytes[%d] = 0x%x, want 0xa5", i, b)
		}
	}
}

func TestDecodeResponseChannelConfigOneChannelPerRawByte(t *testing.T) {
	payload := []byte{0, 5, 15}
	frame := encodeResponseFrame(Octave4, cmdGetChannelConfig, StatusAck, payload)

	resp, err := DecodeResponse(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Kind != RespChannelConfig {
		t.Fatalf("Kind = %s, want ChannelConfig", resp.Kind)
	}
	if len(resp.Channels) != len(payload) {
		t.Fatalf("len(Channels) = %d, want %d (one per raw payload byte)", len(resp.Channels), len(payload))
	}
	want := []uint8{1, 6, 16}
	for i, ch := range resp.Channels {
		if ch.OneIndexed() != want[i] {
			t.Fatalf("Channels[%d] = %d, want %d", i, ch.OneIndexed(), want[i])
		}
	}
}

func TestDecodeResponseChannelConfigRejectsOutOfRangeByte(t *testing.T) {
	frame := encodeResponseFrame(Octave1, cmdGetChannelConfig, StatusAck, []byte{16})
	if _, err := DecodeResponse(frame); err == nil {
		t.Fatalf("expected an error for a channel byte above 15")
	}
}

func TestDecodeResponseFaderTypeConfigFallsBackToAck(t *testing.T) {
	frame := encodeResponseFrame(Octave1, cmdGetFaderTypeConfig, StatusAck, make([]byte, KeysPerBoard*2))
	resp, err := DecodeResponse(frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Kind != RespAck || resp.CommandID != cmdGetFaderTypeConfig {
		t.Fatalf("got %+v, want an Ack echoing cmdGetFaderTypeConfig", resp)
	}
}
