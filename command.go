package lumatone

import "fmt"

// Command is the closed set of requests the driver can send to the
// device. It is a tagged struct rather than an interface: Kind selects
// which of the fields below are meaningful, mirroring the closed catalog
// in the wire protocol (§6.1 of the command-id table).
type Command struct {
	Kind CommandKind

	Board    BoardIndex
	Location KeyLocation
	Function KeyFunction
	Color    RGBColor
	Preset   PresetIndex

	Value   uint8  // single-byte payloads: sensitivity, threshold components
	Value2  uint8  // second byte of a two-value payload (thresholds)
	Value16 uint16 // 14/12-bit payloads: pitch sensitivity, delays, ADC thresholds
	PingValue uint32
	Flag    bool
	Table   SysexTable
	Intervals IntervalTable

	PitchWheelChannel  MidiChannel
	ModWheelChannel    MidiChannel
	ExpressionChannel  MidiChannel
	SustainChannel     MidiChannel
}

func (c Command) String() string {
	switch c.Kind {
	case KindPing:
		return fmt.Sprintf("Ping(%d)", c.PingValue)
	case KindSetKeyFunction:
		return fmt.Sprintf("SetKeyFunction(%s, %s)", c.Location, c.Function)
	case KindSetKeyColor:
		return fmt.Sprintf("SetKeyColor(%s, %s)", c.Location, c.Color)
	case KindSetPeripheralChannels:
		return fmt.Sprintf("SetPeripheralChannels{pitch=%s, mod=%s, expr=%s, sustain=%s}",
			c.PitchWheelChannel, c.ModWheelChannel, c.ExpressionChannel, c.SustainChannel)
	default:
		return c.Kind.String()
	}
}

// ID returns the wire command id this command encodes to.
func (c Command) ID() CommandID {
	switch c.Kind {
	case KindPing:
		return cmdLumaPing
	case KindSetKeyFunction:
		return cmdChangeKeyNote
	case KindSetKeyColor:
		return cmdSetKeyColour
	case KindSaveProgram:
		return cmdSaveProgram
	case KindSetExpressionPedalSensitivity:
		return cmdSetFootCtrlSensitivity
	case KindSetModWheelSensitivity:
		return cmdSetModWheelSensitivity
	case KindSetPitchWheelSensitivity:
		return cmdSetPitchWheelSensitivity
	case KindInvertFootController:
		return cmdInvertFootController
	case KindInvertSustainPedal:
		return cmdInvertSustainPedal
	case KindSetMacroButtonActiveColor:
		return cmdMacroColourOn
	case KindSetMacroButtonInactiveColor:
		return cmdMacroColourOff
	case KindSetLightOnKeystrokes:
		return cmdLightOnKeystrokes
	case KindSetAftertouchEnabled:
		return cmdSetAftertouchFlag
	case KindEnableDemoMode:
		return cmdDemoMode
	case KindEnablePitchModWheelCalibrationMode:
		return cmdCalibratePitchModWheel
	case KindEnableExpressionPedalCalibrationMode:
		return cmdCalibrateExpressionPedal
	case KindSetVelocityConfig:
		return cmdSetVelocityConfig
	case KindSetFaderConfig:
		return cmdSetFaderConfig
	case KindSetAftertouchConfig:
		return cmdSetAftertouchConfig
	case KindSetLumatouchConfig:
		return cmdSetLumatouchConfig
	case KindSetVelocityIntervals:
		return cmdSetVelocityIntervals
	case KindSetKeyMaximumThreshold:
		return cmdSetKeyMaxThreshold
	case KindSetKeyMinimumThreshold:
		return cmdSetKeyMinThreshold
	case KindSetKeyFaderSensitivity:
		return cmdSetKeyFaderSensitivity
	case KindSetKeyAftertouchSensitivity:
		return cmdSetKeyAftertouchSensitivity
	case KindSetCCActiveThreshold:
		return cmdSetCCActiveThreshold
	case KindResetBoardThresholds:
		return cmdResetBoardThresholds
	case KindGetRedLEDConfig:
		return cmdGetRedLedConfig
	case KindGetGreenLEDConfig:
		return cmdGetGreenLedConfig
	case KindGetBlueLEDConfig:
		return cmdGetBlueLedConfig
	case KindGetMidiChannelConfig:
		return cmdGetChannelConfig
	case KindGetNoteConfig:
		return cmdGetNoteConfig
	case KindGetKeyTypeConfig:
		return cmdGetKeytypeConfig
	case KindGetMaxFaderThreshold:
		return cmdGetMaxThreshold
	case KindGetMinFaderThreshold:
		return cmdGetMinThreshold
	case KindGetMaxAftertouchThreshold:
		return cmdGetAftertouchMax
	case KindGetKeyValidity:
		return cmdGetKeyValidity
	case KindGetFaderTypeConfig:
		return cmdGetFaderTypeConfig
	case KindGetVelocityConfig:
		return cmdGetVelocityConfig
	case KindGetVelocityIntervalConfig:
		return cmdGetVelocityIntervals
	case KindGetFaderConfig:
		return cmdGetFaderConfig
	case KindGetAftertouchConfig:
		return cmdGetAftertouchConfig
	case KindGetLumatouchConfig:
		return cmdGetLumatouchConfig
	case KindGetSerialID:
		return cmdGetSerialIdentity
	case KindGetFirmwareRevision:
		return cmdGetFirmwareRevision
	case KindStartAftertouchCalibration:
		return cmdCalibrateAftertouch
	case KindStartKeyCalibration:
		return cmdCalibrateKeys
	case KindSaveVelocityConfig:
		return cmdSaveVelocityConfig
	case KindResetVelocityConfig:
		return cmdResetVelocityConfig
	case KindSaveFaderConfig:
		return cmdSaveFaderConfig
	case KindResetFaderConfig:
		return cmdResetFaderConfig
	case KindSaveAftertouchConfig:
		return cmdSaveAftertouchConfig
	case KindResetAftertouchConfig:
		return cmdResetAftertouchConfig
	case KindSaveLumatouchConfig:
		return cmdSaveLumatouchConfig
	case KindResetLumatouchConfig:
		return cmdResetLumatouchConfig
	case KindResetWheelThresholds:
		return cmdResetWheelsThreshold
	case KindResetExpressionPedalBounds:
		return cmdResetExpressionPedalBounds
	case KindEnableKeySampling:
		return cmdSetKeySampling
	case KindSetPitchWheelZeroThreshold:
		return cmdSetPitchWheelCenterThreshold
	case KindGetBoardThresholdValues:
		return cmdGetBoardThresholdValues
	case KindGetBoardSensitivityValues:
		return cmdGetBoardSensitivityValues
	case KindSetPeripheralChannels:
		return cmdSetPeripheralChannels
	case KindGetPeripheralChannels:
		return cmdGetPeripheralChannels
	case KindSetAftertouchTriggerDelay:
		return cmdSetAftertouchTriggerDelay
	case KindGetAftertouchTriggerDelay:
		return cmdGetAftertouchTriggerDelay
	case KindSetLumatouchNoteOffDelay:
		return cmdSetLumatouchNoteOffDelay
	case KindGetLumatouchNoteOffDelay:
		return cmdGetLumatouchNoteOffDelay
	case KindSetExpressionPedalADCThreshold:
		return cmdSetExpressionPedalThreshold
	case KindGetExpressionPedalADCThreshold:
		return cmdGetExpressionPedalThreshold
	default:
		return 0xff
	}
}
