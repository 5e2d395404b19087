package lumatone

// Response is the closed set of decoded replies the device can send back.
// Like Command, it is a tagged struct: Kind selects which fields are
// meaningful.
type Response struct {
	Kind ResponseKind

	CommandID CommandID // meaningful on RespAck
	PingValue uint32

	Board    BoardIndex
	Bytes    []uint8       // LED/note/key-type/threshold board reads
	Valid    []bool        // cmdGetKeyValidity
	Channels []MidiChannel // cmdGetChannelConfig

	Table     SysexTable
	Intervals IntervalTable

	SerialID [6]byte

	FirmwareMajor, FirmwareMinor, FirmwareRevision uint8

	BoardThresholdMinHigh    uint8
	BoardThresholdMinLow     uint8
	BoardThresholdMax        uint8
	BoardThresholdAftertouch uint8
	BoardThresholdCC         uint8

	BoardSensitivityCC         uint8
	BoardSensitivityAftertouch uint8

	PitchWheelChannel MidiChannel
	ModWheelChannel   MidiChannel
	ExpressionChannel MidiChannel
	SustainChannel    MidiChannel

	ExpressionMinBound uint16
	ExpressionMaxBound uint16
	ExpressionValid    bool

	WheelCenterPitch uint16
	WheelMinPitch    uint16
	WheelMaxPitch    uint16
	WheelMinMod      uint16
	WheelMaxMod      uint16

	AftertouchTriggerDelay   uint8
	LumatouchNoteOffDelay    uint16
	ExpressionPedalThreshold uint16
}

func (r Response) String() string {
	switch r.Kind {
	case RespAck:
		return "Ack(" + r.CommandID.String() + ")"
	case RespPong:
		return "Pong"
	default:
		return r.Kind.String()
	}
}

// DecodeResponse parses a complete SysEx frame received from the device
// into a Response. It validates the manufacturer id and command id before
// attempting to interpret the payload, and returns a *Error with an
// appropriate Kind on any failure.
func DecodeResponse(frame []byte) (Response, error) {
	if !isLumatone(frame) {
		return Response{}, newErr(KindNotLumatoneMessage, "frame is not a lumatone sysex message")
	}

	rawID, err := commandIDOf(frame)
	if err != nil {
		return Response{}, err
	}
	id, err := DecodeCommandID(rawID)
	if err != nil {
		return Response{}, err
	}

	payload, err := payloadOf(frame)
	if err != nil {
		return Response{}, err
	}

	switch id {
	case cmdLumaPing:
		return decodePong(payload)

	case cmdGetRedLedConfig:
		return decodeBoardOctave8Bit(frame, payload, RespRedLEDConfig)
	case cmdGetGreenLedConfig:
		return decodeBoardOctave8Bit(frame, payload, RespGreenLEDConfig)
	case cmdGetBlueLedConfig:
		return decodeBoardOctave8Bit(frame, payload, RespBlueLEDConfig)
	case cmdGetChannelConfig:
		return decodeChannelConfig(frame, payload)
	case cmdGetNoteConfig:
		return decodeBoardOctave7Bit(frame, payload, RespNoteConfig)
	case cmdGetKeytypeConfig:
		return decodeBoardOctave7Bit(frame, payload, RespKeyTypeConfig)
	case cmdGetMaxThreshold:
		return decodeBoardOctave8Bit(frame, payload, RespKeyMaxThresholds)
	case cmdGetMinThreshold:
		return decodeBoardOctave8Bit(frame, payload, RespKeyMinThresholds)
	case cmdGetAftertouchMax:
		return decodeBoardOctave8Bit(frame, payload, RespAftertouchMaxThresholds)
	case cmdGetKeyValidity:
		return decodeKeyValidity(frame, payload)

	case cmdGetVelocityConfig:
		return decodeCurveTable(payload, RespVelocityConfig, true)
	case cmdGetFaderConfig:
		return decodeCurveTable(payload, RespFaderConfig, false)
	case cmdGetAftertouchConfig:
		return decodeCurveTable(payload, RespAftertouchConfig, false)
	case cmdGetLumatouchConfig:
		return decodeCurveTable(payload, RespLumatouchConfig, false)

	case cmdGetVelocityIntervals:
		return decodeVelocityIntervals(payload)

	case cmdGetSerialIdentity:
		return decodeSerialID(payload)
	case cmdGetFirmwareRevision:
		return decodeFirmwareRevision(payload)

	case cmdGetBoardThresholdValues:
		return decodeBoardThresholds(frame, payload)
	case cmdGetBoardSensitivityValues:
		return decodeBoardSensitivity(frame, payload)

	case cmdGetPeripheralChannels:
		return decodePeripheralChannels(payload)

	case cmdCalibrateExpressionPedal:
		return decodeExpressionCalibrationStatus(payload)
	case cmdCalibratePitchModWheel:
		return decodeWheelCalibrationStatus(payload)

	case cmdGetAftertouchTriggerDelay:
		return decodeAftertouchTriggerDelay(frame, payload)
	case cmdGetLumatouchNoteOffDelay:
		return decodeLumatouchNoteOffDelay(frame, payload)
	case cmdGetExpressionPedalThreshold:
		return decodeExpressionPedalThreshold(payload)

	default:
		// Commands with no structured reply payload are acknowledged by
		// echoing their own command id back.
		return Response{Kind: RespAck, CommandID: id}, nil
	}
}

func decodePong(payload []byte) (Response, error) {
	if len(payload) < 4 {
		return Response{}, newErrf(KindMessagePayloadTooShort, "pong payload too short: want 4, got %d", len(payload))
	}
	if payload[0] != testEchoByte {
		return Response{}, newErrf(KindMessagePayloadInvalid, "pong echo byte mismatch: got 0x%02x", payload[0])
	}
	v := uint32(payload[1]&0x7f)<<14 | uint32(payload[2]&0x7f)<<7 | uint32(payload[3]&0x7f)
	return Response{Kind: RespPong, PingValue: v}, nil
}

// decodeBoardOctave8Bit decodes a per-key, one-byte-per-key board read
// whose payload packs two nibbles per key: board index from the frame,
// KeysPerBoard nibble-pair-packed bytes from the payload. LED config and
// threshold reads are transmitted this way; note/key-type config is not
// (see decodeBoardOctave7Bit).
func decodeBoardOctave8Bit(frame, payload []byte, kind ResponseKind) (Response, error) {
	board, err := boardIndexOf(frame)
	if err != nil {
		return Response{}, err
	}
	bytes, err := unpack8BitPairs(payload, KeysPerBoard)
	if err != nil {
		return Response{}, err
	}
	return Response{Kind: kind, Board: board, Bytes: bytes}, nil
}

// decodeBoardOctave7Bit decodes a per-key board read whose payload bytes
// are already the wire values, one per key, with no nibble-pair packing.
func decodeBoardOctave7Bit(frame, payload []byte, kind ResponseKind) (Response, error) {
	board, err := boardIndexOf(frame)
	if err != nil {
		return Response{}, err
	}
	if len(payload) < KeysPerBoard {
		return Response{}, newErrf(KindMessagePayloadTooShort, "board octave payload too short: want %d, got %d", KeysPerBoard, len(payload))
	}
	bytes := make([]byte, KeysPerBoard)
	copy(bytes, payload[:KeysPerBoard])
	return Response{Kind: kind, Board: board, Bytes: bytes}, nil
}

func decodeChannelConfig(frame, payload []byte) (Response, error) {
	board, err := boardIndexOf(frame)
	if err != nil {
		return Response{}, err
	}
	channels := make([]MidiChannel, len(payload))
	for i, b := range payload {
		ch, err := NewMidiChannelZeroIndexed(b)
		if err != nil {
			return Response{}, err
		}
		channels[i] = ch
	}
	return Response{Kind: RespChannelConfig, Board: board, Channels: channels}, nil
}

func decodeKeyValidity(frame, payload []byte) (Response, error) {
	board, err := boardIndexOf(frame)
	if err != nil {
		return Response{}, err
	}
	raw, err := unpack8BitPairs(payload, KeysPerBoard)
	if err != nil {
		return Response{}, err
	}
	valid := make([]bool, KeysPerBoard)
	for i, b := range raw {
		valid[i] = b != 0
	}
	return Response{Kind: RespKeyValidity, Board: board, Valid: valid}, nil
}

// decodeCurveTable reads a raw 128-entry curve table from payload.
// reverse is true for cmdGetVelocityConfig, whose wire form is transmitted
// hard-to-soft while every other caller expects soft-to-hard order (see
// SysexTable.reversed, used symmetrically on encode).
func decodeCurveTable(payload []byte, kind ResponseKind, reverse bool) (Response, error) {
	if len(payload) < TableSize {
		return Response{}, newErrf(KindMessagePayloadTooShort, "curve table payload too short: want %d, got %d", TableSize, len(payload))
	}
	t, err := NewSysexTable(payload[:TableSize])
	if err != nil {
		return Response{}, err
	}
	if reverse {
		t = t.reversed()
	}
	return Response{Kind: kind, Table: t}, nil
}

func decodeVelocityIntervals(payload []byte) (Response, error) {
	t, err := decodeIntervalTable(payload)
	if err != nil {
		return Response{}, err
	}
	return Response{Kind: RespVelocityIntervalConfig, Intervals: t}, nil
}

func decodeSerialID(payload []byte) (Response, error) {
	if len(payload) < 6 {
		return Response{}, newErrf(KindMessagePayloadTooShort, "serial id payload too short: want 6, got %d", len(payload))
	}
	var id [6]byte
	copy(id[:], payload[:6])
	return Response{Kind: RespSerialID, SerialID: id}, nil
}

func decodeFirmwareRevision(payload []byte) (Response, error) {
	if len(payload) < 3 {
		return Response{}, newErrf(KindMessagePayloadTooShort, "firmware revision payload too short: want 3, got %d", len(payload))
	}
	return Response{
		Kind:               RespFirmwareRevision,
		FirmwareMajor:      payload[0],
		FirmwareMinor:      payload[1],
		FirmwareRevision:   payload[2],
	}, nil
}

func decodeBoardThresholds(frame, payload []byte) (Response, error) {
	board, err := boardIndexOf(frame)
	if err != nil {
		return Response{}, err
	}
	v, err := unpack8BitPairs(payload, 5)
	if err != nil {
		return Response{}, err
	}
	return Response{
		Kind:                     RespBoardThresholds,
		Board:                    board,
		BoardThresholdMinHigh:    v[0],
		BoardThresholdMinLow:     v[1],
		BoardThresholdMax:        v[2],
		BoardThresholdAftertouch: v[3],
		BoardThresholdCC:         v[4],
	}, nil
}

func decodeBoardSensitivity(frame, payload []byte) (Response, error) {
	board, err := boardIndexOf(frame)
	if err != nil {
		return Response{}, err
	}
	v, err := unpack8BitPairs(payload, 2)
	if err != nil {
		return Response{}, err
	}
	return Response{
		Kind:                       RespBoardSensitivity,
		Board:                      board,
		BoardSensitivityCC:         v[0],
		BoardSensitivityAftertouch: v[1],
	}, nil
}

func decodePeripheralChannels(payload []byte) (Response, error) {
	if len(payload) < 4 {
		return Response{}, newErrf(KindMessagePayloadTooShort, "peripheral channels payload too short: want 4, got %d", len(payload))
	}
	pitch, err := NewMidiChannelZeroIndexed(payload[0])
	if err != nil {
		return Response{}, err
	}
	mod, err := NewMidiChannelZeroIndexed(payload[1])
	if err != nil {
		return Response{}, err
	}
	expr, err := NewMidiChannelZeroIndexed(payload[2])
	if err != nil {
		return Response{}, err
	}
	sustain, err := NewMidiChannelZeroIndexed(payload[3])
	if err != nil {
		return Response{}, err
	}
	return Response{
		Kind:              RespPeripheralChannels,
		PitchWheelChannel: pitch,
		ModWheelChannel:   mod,
		ExpressionChannel: expr,
		SustainChannel:    sustain,
	}, nil
}

// decodeExpressionCalibrationStatus decodes the periodic status frame
// sent automatically while expression-pedal calibration mode is active.
// The valid flag sits at payload offset 6: the C++ firmware reads it at
// offset 3, which later drivers identified as a firmware-side bug and
// corrected on the host side. We follow the corrected offset.
func decodeExpressionCalibrationStatus(payload []byte) (Response, error) {
	bounds, err := unpack12BitFrom7Bit(payload, 2)
	if err != nil {
		return Response{}, err
	}
	if len(payload) < 7 {
		return Response{}, newErrf(KindMessagePayloadTooShort, "expression calibration status payload too short: want 7, got %d", len(payload))
	}
	return Response{
		Kind:               RespExpressionCalibrationStatus,
		ExpressionMinBound: bounds[0],
		ExpressionMaxBound: bounds[1],
		ExpressionValid:    payload[6] != 0,
	}, nil
}

func decodeWheelCalibrationStatus(payload []byte) (Response, error) {
	v, err := unpack12BitFrom7Bit(payload, 5)
	if err != nil {
		return Response{}, err
	}
	return Response{
		Kind:             RespWheelCalibrationStatus,
		WheelCenterPitch: v[0],
		WheelMinPitch:    v[1],
		WheelMaxPitch:    v[2],
		WheelMinMod:      v[3],
		WheelMaxMod:      v[4],
	}, nil
}

func decodeAftertouchTriggerDelay(frame, payload []byte) (Response, error) {
	board, err := boardIndexOf(frame)
	if err != nil {
		return Response{}, err
	}
	v, err := unpack8BitPairs(payload, 1)
	if err != nil {
		return Response{}, err
	}
	return Response{Kind: RespAftertouchTriggerDelay, Board: board, AftertouchTriggerDelay: v[0]}, nil
}

func decodeLumatouchNoteOffDelay(frame, payload []byte) (Response, error) {
	board, err := boardIndexOf(frame)
	if err != nil {
		return Response{}, err
	}
	v, err := unpack12BitFrom4Bit(payload, 1)
	if err != nil {
		return Response{}, err
	}
	return Response{Kind: RespLumatouchNoteOffDelay, Board: board, LumatouchNoteOffDelay: v[0]}, nil
}

func decodeExpressionPedalThreshold(payload []byte) (Response, error) {
	v, err := unpack12BitFrom4Bit(payload, 1)
	if err != nil {
		return Response{}, err
	}
	return Response{Kind: RespExpressionPedalThreshold, ExpressionPedalThreshold: v[0]}, nil
}
