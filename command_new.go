package lumatone

// This file collects the public constructors for every Command variant.
// Grouped by shape (zero-arg, toggle, single/double value, structured)
// rather than alphabetically, matching how commands.rs groups them.

func zeroArgServer(kind CommandKind) Command { return Command{Kind: kind, Board: Server} }
func zeroArgBoard(kind CommandKind, board BoardIndex) Command {
	return Command{Kind: kind, Board: board}
}
func toggleServer(kind CommandKind, flag bool) Command {
	return Command{Kind: kind, Board: Server, Flag: flag}
}

// Ping asks the device to echo value back as a Pong. The value is stored
// masked to 28 bits, but the wire payload carries only its low 21 bits
// (three 7-bit bytes), so only those bits come back in the Pong.
func Ping(value uint32) Command {
	return Command{Kind: KindPing, Board: Server, PingValue: value & 0x0fffffff}
}

// SetKeyFunction configures a single key's functional behavior.
func SetKeyFunction(location KeyLocation, function KeyFunction) Command {
	return Command{Kind: KindSetKeyFunction, Board: location.Board, Location: location, Function: function}
}

// SetKeyColor sets a single key's LED color.
func SetKeyColor(location KeyLocation, color RGBColor) Command {
	return Command{Kind: KindSetKeyColor, Board: location.Board, Location: location, Color: color}
}

// SaveProgram saves the current configuration to an on-device preset slot.
func SaveProgram(preset PresetIndex) Command {
	return Command{Kind: KindSaveProgram, Board: Server, Preset: preset}
}

// SetExpressionPedalSensitivity sets the expression pedal sensitivity, 0..0x7f.
func SetExpressionPedalSensitivity(value uint8) Command {
	return Command{Kind: KindSetExpressionPedalSensitivity, Board: Server, Value: value}
}

// SetModWheelSensitivity sets the mod wheel sensitivity; clamped to 1..0x7f on encode.
func SetModWheelSensitivity(value uint8) Command {
	return Command{Kind: KindSetModWheelSensitivity, Board: Server, Value: value}
}

// SetPitchWheelSensitivity sets the pitch wheel sensitivity (14-bit); clamped to 1..0x3fff on encode.
func SetPitchWheelSensitivity(value uint16) Command {
	return Command{Kind: KindSetPitchWheelSensitivity, Board: Server, Value16: value}
}

// InvertFootController inverts the foot controller direction.
func InvertFootController(invert bool) Command { return toggleServer(KindInvertFootController, invert) }

// InvertSustainPedal inverts the sustain pedal polarity.
func InvertSustainPedal(invert bool) Command { return toggleServer(KindInvertSustainPedal, invert) }

// SetLightOnKeystrokes toggles whether keys light up on press.
func SetLightOnKeystrokes(active bool) Command { return toggleServer(KindSetLightOnKeystrokes, active) }

// SetAftertouchEnabled toggles aftertouch functionality.
func SetAftertouchEnabled(enabled bool) Command { return toggleServer(KindSetAftertouchEnabled, enabled) }

// EnableDemoMode starts (true) or stops (false) the device's demo mode.
func EnableDemoMode(enabled bool) Command { return toggleServer(KindEnableDemoMode, enabled) }

// EnablePitchModWheelCalibrationMode starts or stops pitch/mod wheel calibration.
func EnablePitchModWheelCalibrationMode(enabled bool) Command {
	return toggleServer(KindEnablePitchModWheelCalibrationMode, enabled)
}

// EnableExpressionPedalCalibrationMode starts or stops expression pedal calibration.
func EnableExpressionPedalCalibrationMode(enabled bool) Command {
	return toggleServer(KindEnableExpressionPedalCalibrationMode, enabled)
}

// SetMacroButtonActiveColor sets the macro button's active-state LED color.
func SetMacroButtonActiveColor(color RGBColor) Command {
	return Command{Kind: KindSetMacroButtonActiveColor, Board: Server, Color: color}
}

// SetMacroButtonInactiveColor sets the macro button's inactive-state LED color.
func SetMacroButtonInactiveColor(color RGBColor) Command {
	return Command{Kind: KindSetMacroButtonInactiveColor, Board: Server, Color: color}
}

// SetVelocityConfig sets the device's velocity lookup curve.
func SetVelocityConfig(table SysexTable) Command {
	return Command{Kind: KindSetVelocityConfig, Board: Server, Table: table}
}

// SetFaderConfig sets the device's fader lookup curve.
func SetFaderConfig(table SysexTable) Command {
	return Command{Kind: KindSetFaderConfig, Board: Server, Table: table}
}

// SetAftertouchConfig sets the device's aftertouch lookup curve.
func SetAftertouchConfig(table SysexTable) Command {
	return Command{Kind: KindSetAftertouchConfig, Board: Server, Table: table}
}

// SetLumatouchConfig sets the device's lumatouch lookup curve.
func SetLumatouchConfig(table SysexTable) Command {
	return Command{Kind: KindSetLumatouchConfig, Board: Server, Table: table}
}

// SetVelocityIntervals sets the 127-entry velocity-interval table.
func SetVelocityIntervals(table IntervalTable) Command {
	return Command{Kind: KindSetVelocityIntervals, Board: Server, Intervals: table}
}

// SetKeyMaximumThreshold sets a board's max-value trigger distance and aftertouch max.
func SetKeyMaximumThreshold(board BoardIndex, maxThreshold, aftertouchMax uint8) Command {
	return Command{Kind: KindSetKeyMaximumThreshold, Board: board, Value: maxThreshold, Value2: aftertouchMax}
}

// SetKeyMinimumThreshold sets a board's min-value trigger distance (high/low pair).
func SetKeyMinimumThreshold(board BoardIndex, thresholdHigh, thresholdLow uint8) Command {
	return Command{Kind: KindSetKeyMinimumThreshold, Board: board, Value: thresholdHigh, Value2: thresholdLow}
}

// SetPitchWheelZeroThreshold sets the calibrated-zero bound of the pitch wheel.
func SetPitchWheelZeroThreshold(value uint8) Command {
	return Command{Kind: KindSetPitchWheelZeroThreshold, Board: Server, Value: value}
}

// SetKeyFaderSensitivity sets a board's CC-event sensitivity.
func SetKeyFaderSensitivity(board BoardIndex, value uint8) Command {
	return Command{Kind: KindSetKeyFaderSensitivity, Board: board, Value: value}
}

// SetKeyAftertouchSensitivity sets a board's aftertouch-event sensitivity.
func SetKeyAftertouchSensitivity(board BoardIndex, value uint8) Command {
	return Command{Kind: KindSetKeyAftertouchSensitivity, Board: board, Value: value}
}

// SetCCActiveThreshold sets a board's CC active threshold.
func SetCCActiveThreshold(board BoardIndex, value uint8) Command {
	return Command{Kind: KindSetCCActiveThreshold, Board: board, Value: value}
}

// ResetBoardThresholds resets a board's event/sensitivity thresholds to factory defaults.
func ResetBoardThresholds(board BoardIndex) Command { return zeroArgBoard(KindResetBoardThresholds, board) }

// SetAftertouchTriggerDelay sets a board's aftertouch trigger delay.
func SetAftertouchTriggerDelay(board BoardIndex, value uint8) Command {
	return Command{Kind: KindSetAftertouchTriggerDelay, Board: board, Value: value}
}

// GetAftertouchTriggerDelay reads back a board's aftertouch trigger delay.
func GetAftertouchTriggerDelay(board BoardIndex) Command {
	return zeroArgBoard(KindGetAftertouchTriggerDelay, board)
}

// SetLumatouchNoteOffDelay sets a board's lumatouch note-off delay (11-bit).
func SetLumatouchNoteOffDelay(board BoardIndex, value uint16) Command {
	return Command{Kind: KindSetLumatouchNoteOffDelay, Board: board, Value16: value}
}

// GetLumatouchNoteOffDelay reads back a board's lumatouch note-off delay.
func GetLumatouchNoteOffDelay(board BoardIndex) Command {
	return zeroArgBoard(KindGetLumatouchNoteOffDelay, board)
}

// GetRedLEDConfig reads back the red LED intensity of every key on board.
func GetRedLEDConfig(board BoardIndex) Command { return zeroArgBoard(KindGetRedLEDConfig, board) }

// GetGreenLEDConfig reads back the green LED intensity of every key on board.
func GetGreenLEDConfig(board BoardIndex) Command { return zeroArgBoard(KindGetGreenLEDConfig, board) }

// GetBlueLEDConfig reads back the blue LED intensity of every key on board.
func GetBlueLEDConfig(board BoardIndex) Command { return zeroArgBoard(KindGetBlueLEDConfig, board) }

// GetMidiChannelConfig reads back the MIDI channel of every key on board.
func GetMidiChannelConfig(board BoardIndex) Command { return zeroArgBoard(KindGetMidiChannelConfig, board) }

// GetNoteConfig reads back the note/CC number of every key on board.
func GetNoteConfig(board BoardIndex) Command { return zeroArgBoard(KindGetNoteConfig, board) }

// GetKeyTypeConfig reads back the key-type code of every key on board.
func GetKeyTypeConfig(board BoardIndex) Command { return zeroArgBoard(KindGetKeyTypeConfig, board) }

// GetMaxFaderThreshold reads back the max fader threshold of every key on board.
func GetMaxFaderThreshold(board BoardIndex) Command { return zeroArgBoard(KindGetMaxFaderThreshold, board) }

// GetMinFaderThreshold reads back the min fader threshold of every key on board.
func GetMinFaderThreshold(board BoardIndex) Command { return zeroArgBoard(KindGetMinFaderThreshold, board) }

// GetMaxAftertouchThreshold reads back the aftertouch max threshold of every key on board.
func GetMaxAftertouchThreshold(board BoardIndex) Command {
	return zeroArgBoard(KindGetMaxAftertouchThreshold, board)
}

// GetKeyValidity reads back the minimum-threshold validity bitmap of board.
func GetKeyValidity(board BoardIndex) Command { return zeroArgBoard(KindGetKeyValidity, board) }

// GetFaderTypeConfig reads back the fader type of every key on board.
func GetFaderTypeConfig(board BoardIndex) Command { return zeroArgBoard(KindGetFaderTypeConfig, board) }

// GetBoardThresholdValues reads back the threshold values of board.
func GetBoardThresholdValues(board BoardIndex) Command {
	return zeroArgBoard(KindGetBoardThresholdValues, board)
}

// GetBoardSensitivityValues reads back the sensitivity values of board.
func GetBoardSensitivityValues(board BoardIndex) Command {
	return zeroArgBoard(KindGetBoardSensitivityValues, board)
}

// GetVelocityConfig reads back the device's velocity lookup curve.
func GetVelocityConfig() Command { return zeroArgServer(KindGetVelocityConfig) }

// GetVelocityIntervalConfig reads back the velocity-interval table.
func GetVelocityIntervalConfig() Command { return zeroArgServer(KindGetVelocityIntervalConfig) }

// GetFaderConfig reads back the device's fader lookup curve.
func GetFaderConfig() Command { return zeroArgServer(KindGetFaderConfig) }

// GetAftertouchConfig reads back the device's aftertouch lookup curve.
func GetAftertouchConfig() Command { return zeroArgServer(KindGetAftertouchConfig) }

// GetLumatouchConfig reads back the device's lumatouch lookup curve.
func GetLumatouchConfig() Command { return zeroArgServer(KindGetLumatouchConfig) }

// GetSerialID reads back the device's serial identification number.
func GetSerialID() Command { return zeroArgServer(KindGetSerialID) }

// GetFirmwareRevision reads back the device's firmware revision.
func GetFirmwareRevision() Command { return zeroArgServer(KindGetFirmwareRevision) }

// StartAftertouchCalibration initiates the aftertouch calibration routine.
func StartAftertouchCalibration() Command { return zeroArgServer(KindStartAftertouchCalibration) }

// StartKeyCalibration initiates the key calibration routine.
func StartKeyCalibration() Command { return zeroArgServer(KindStartKeyCalibration) }

// SaveVelocityConfig persists the current velocity curve to EEPROM.
func SaveVelocityConfig() Command { return zeroArgServer(KindSaveVelocityConfig) }

// ResetVelocityConfig resets the velocity curve to its EEPROM-saved value.
func ResetVelocityConfig() Command { return zeroArgServer(KindResetVelocityConfig) }

// SaveFaderConfig persists the current fader curve.
func SaveFaderConfig() Command { return zeroArgServer(KindSaveFaderConfig) }

// ResetFaderConfig resets the fader curve to factory settings.
func ResetFaderConfig() Command { return zeroArgServer(KindResetFaderConfig) }

// SaveAftertouchConfig persists the current aftertouch curve.
func SaveAftertouchConfig() Command { return zeroArgServer(KindSaveAftertouchConfig) }

// ResetAftertouchConfig resets the aftertouch curve to factory settings.
func ResetAftertouchConfig() Command { return zeroArgServer(KindResetAftertouchConfig) }

// SaveLumatouchConfig persists the current lumatouch curve.
func SaveLumatouchConfig() Command { return zeroArgServer(KindSaveLumatouchConfig) }

// ResetLumatouchConfig resets the lumatouch curve to factory settings.
func ResetLumatouchConfig() Command { return zeroArgServer(KindResetLumatouchConfig) }

// ResetWheelThresholds resets the pitch/mod wheel thresholds to factory settings.
func ResetWheelThresholds() Command { return zeroArgServer(KindResetWheelThresholds) }

// ResetExpressionPedalBounds resets the expression pedal min/max bounds to factory settings.
func ResetExpressionPedalBounds() Command { return zeroArgServer(KindResetExpressionPedalBounds) }

// EnableKeySampling toggles key sampling over SSH for board.
func EnableKeySampling(board BoardIndex, enable bool) Command {
	return Command{Kind: KindEnableKeySampling, Board: board, Flag: enable}
}

// SetPeripheralChannels assigns MIDI channels to the four peripheral controllers.
func SetPeripheralChannels(pitchWheel, modWheel, expression, sustain MidiChannel) Command {
	return Command{
		Kind:               KindSetPeripheralChannels,
		Board:              Server,
		PitchWheelChannel:  pitchWheel,
		ModWheelChannel:    modWheel,
		ExpressionChannel:  expression,
		SustainChannel:     sustain,
	}
}

// GetPeripheralChannels reads back the MIDI channels of the peripheral controllers.
func GetPeripheralChannels() Command { return zeroArgServer(KindGetPeripheralChannels) }

// SetExpressionPedalADCThreshold sets the expression pedal's 12-bit ADC threshold.
func SetExpressionPedalADCThreshold(value uint16) Command {
	return Command{Kind: KindSetExpressionPedalADCThreshold, Board: Server, Value16: value}
}

// GetExpressionPedalADCThreshold reads back the expression pedal's ADC threshold.
func GetExpressionPedalADCThreshold() Command {
	return zeroArgServer(KindGetExpressionPedalADCThreshold)
}
