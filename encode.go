package lumatone

func clampU8(v, lo, hi uint8) uint8 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampU16(v, lo, hi uint16) uint16 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Encode serializes c into a complete SysEx frame, start marker through
// end marker, per the per-command layouts in the wire format.
func (c Command) Encode() []byte {
	id := c.ID()
	switch c.Kind {
	case KindPing:
		return encodeFrame(Server, id, []byte{
			testEchoByte,
			uint8((c.PingValue >> 14) & 0x7f),
			uint8((c.PingValue >> 7) & 0x7f),
			uint8(c.PingValue & 0x7f),
		})

	case KindSetKeyFunction:
		return encodeFrame(c.Location.Board, id, []byte{
			c.Location.Key.Byte(),
			c.Function.noteOrCCByte(),
			c.Function.Channel.ZeroIndexedByte(),
			c.Function.wireTypeByte(),
		})

	case KindSetKeyColor:
		n := c.Color.Nibbles()
		data := append([]byte{c.Location.Key.Byte()}, n[:]...)
		return encodeFrame(c.Location.Board, id, data)

	case KindSaveProgram:
		return encodeFrame(Server, id, []byte{c.Preset.Byte()})

	case KindSetExpressionPedalSensitivity:
		return encodeFrame(Server, id, []byte{c.Value})

	case KindSetModWheelSensitivity:
		return encodeFrame(Server, id, []byte{clampU8(c.Value, 1, 0x7f)})

	case KindSetPitchWheelSensitivity:
		v := clampU16(c.Value16, 1, 0x3fff)
		return encodeFrame(Server, id, []byte{uint8(v >> 7), uint8(v & 0x7f)})

	case KindInvertFootController, KindInvertSustainPedal, KindSetLightOnKeystrokes,
		KindSetAftertouchEnabled, KindEnableDemoMode, KindEnablePitchModWheelCalibrationMode,
		KindEnableExpressionPedalCalibrationMode:
		return encodeFrame(Server, id, []byte{boolByte(c.Flag)})

	case KindEnableKeySampling:
		return encodeFrame(c.Board, id, []byte{boolByte(c.Flag)})

	case KindSetMacroButtonActiveColor, KindSetMacroButtonInactiveColor:
		n := c.Color.Nibbles()
		return encodeFrame(Server, id, n[:])

	case KindSetVelocityConfig:
		// the velocity config is transmitted in reverse order relative to
		// its preset-file representation
		return encodeFrame(Server, id, c.Table.reversed().bytes())

	case KindSetFaderConfig, KindSetAftertouchConfig, KindSetLumatouchConfig:
		return encodeFrame(Server, id, c.Table.bytes())

	case KindSetVelocityIntervals:
		return encodeFrame(Server, id, encodeIntervalTable(c.Intervals))

	case KindSetKeyMaximumThreshold, KindSetKeyMinimumThreshold:
		t1 := c.Value & 0xfe
		t2 := c.Value2 & 0xfe
		return encodeFrame(c.Board, id, []byte{t1 >> 4, t1 & 0xf, t2 >> 4, t2 & 0xf})

	case KindSetPitchWheelZeroThreshold:
		return encodeFrame(Server, id, []byte{c.Value & 0x7f})

	case KindSetKeyFaderSensitivity, KindSetKeyAftertouchSensitivity, KindSetCCActiveThreshold:
		v := c.Value & 0xfe
		return encodeFrame(c.Board, id, []byte{v >> 4, v & 0xf})

	case KindResetBoardThresholds, KindGetAftertouchTriggerDelay, KindGetLumatouchNoteOffDelay,
		KindGetRedLEDConfig, KindGetGreenLEDConfig, KindGetBlueLEDConfig, KindGetMidiChannelConfig,
		KindGetNoteConfig, KindGetKeyTypeConfig, KindGetMaxFaderThreshold, KindGetMinFaderThreshold,
		KindGetMaxAftertouchThreshold, KindGetKeyValidity, KindGetFaderTypeConfig,
		KindGetBoardThresholdValues, KindGetBoardSensitivityValues:
		return encodeFrame(c.Board, id, nil)

	case KindSetAftertouchTriggerDelay:
		return encodeFrame(c.Board, id, []byte{c.Value >> 4, c.Value & 0xf})

	case KindSetLumatouchNoteOffDelay:
		v := c.Value16
		return encodeFrame(c.Board, id, []byte{uint8((v >> 8) & 0xf), uint8((v >> 4) & 0xf), uint8(v & 0xf)})

	case KindGetVelocityConfig, KindGetVelocityIntervalConfig, KindGetFaderConfig,
		KindGetAftertouchConfig, KindGetLumatouchConfig, KindGetSerialID, KindGetFirmwareRevision,
		KindStartAftertouchCalibration, KindStartKeyCalibration, KindSaveVelocityConfig,
		KindResetVelocityConfig, KindSaveFaderConfig, KindResetFaderConfig, KindSaveAftertouchConfig,
		KindResetAftertouchConfig, KindSaveLumatouchConfig, KindResetLumatouchConfig,
		KindResetWheelThresholds, KindResetExpressionPedalBounds, KindGetPeripheralChannels,
		KindGetExpressionPedalADCThreshold:
		return encodeFrame(Server, id, nil)

	case KindSetPeripheralChannels:
		return encodeFrame(Server, id, []byte{
			c.PitchWheelChannel.ZeroIndexedByte(),
			c.ModWheelChannel.ZeroIndexedByte(),
			c.ExpressionChannel.ZeroIndexedByte(),
			c.SustainChannel.ZeroIndexedByte(),
		})

	case KindSetExpressionPedalADCThreshold:
		v := c.Value16
		return encodeFrame(Server, id, []byte{uint8((v >> 8) & 0xf), uint8((v >> 4) & 0xf), uint8(v & 0xf)})

	default:
		return encodeFrame(c.Board, id, nil)
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// testEchoByte distinguishes Ping echoes from ordinary payload data.
const testEchoByte byte = 0x7f
