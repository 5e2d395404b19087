package lumatone

import "fmt"

// CommandID is the closed catalog of wire command bytes. It round-trips
// to/from a byte exactly; an unrecognized byte decodes to an error, not
// a value of this type (see DecodeCommandID).
type CommandID uint8

const (
	cmdChangeKeyNote                  CommandID = 0x00
	cmdSetKeyColour                   CommandID = 0x01
	cmdSaveProgram                    CommandID = 0x02
	cmdSetFootCtrlSensitivity         CommandID = 0x03
	cmdInvertFootController           CommandID = 0x04
	cmdMacroColourOn                  CommandID = 0x05
	cmdMacroColourOff                 CommandID = 0x06
	cmdLightOnKeystrokes              CommandID = 0x07
	cmdSetVelocityConfig              CommandID = 0x08
	cmdSaveVelocityConfig             CommandID = 0x09
	cmdResetVelocityConfig            CommandID = 0x0a
	cmdSetFaderConfig                 CommandID = 0x0b
	cmdSaveFaderConfig                CommandID = 0x0c
	cmdResetFaderConfig               CommandID = 0x0d
	cmdSetAftertouchFlag              CommandID = 0x0e
	cmdCalibrateAftertouch            CommandID = 0x0f
	cmdSetAftertouchConfig            CommandID = 0x10
	cmdSaveAftertouchConfig           CommandID = 0x11
	cmdResetAftertouchConfig          CommandID = 0x12
	cmdGetRedLedConfig                CommandID = 0x13
	cmdGetGreenLedConfig              CommandID = 0x14
	cmdGetBlueLedConfig               CommandID = 0x15
	cmdGetChannelConfig                CommandID = 0x16
	cmdGetNoteConfig                  CommandID = 0x17
	cmdGetKeytypeConfig               CommandID = 0x18
	cmdGetMaxThreshold                CommandID = 0x19
	cmdGetMinThreshold                CommandID = 0x1a
	cmdGetAftertouchMax                CommandID = 0x1b
	cmdGetKeyValidity                  CommandID = 0x1c
	cmdGetVelocityConfig               CommandID = 0x1d
	cmdGetFaderConfig                  CommandID = 0x1e
	cmdGetAftertouchConfig             CommandID = 0x1f
	cmdSetVelocityIntervals            CommandID = 0x20
	cmdGetVelocityIntervals            CommandID = 0x21
	cmdGetFaderTypeConfig              CommandID = 0x22
	cmdGetSerialIdentity                CommandID = 0x23
	cmdCalibrateKeys                    CommandID = 0x24
	cmdDemoMode                         CommandID = 0x25
	cmdCalibratePitchModWheel           CommandID = 0x26
	cmdSetModWheelSensitivity            CommandID = 0x27
	cmdSetPitchWheelSensitivity          CommandID = 0x28
	cmdSetKeyMaxThreshold                CommandID = 0x29
	cmdSetKeyMinThreshold                CommandID = 0x2a
	cmdSetKeyFaderSensitivity             CommandID = 0x2b
	cmdSetKeyAftertouchSensitivity        CommandID = 0x2c
	cmdSetLumatouchConfig                 CommandID = 0x2d
	cmdSaveLumatouchConfig                CommandID = 0x2e
	cmdResetLumatouchConfig               CommandID = 0x2f
	cmdGetLumatouchConfig                 CommandID = 0x30
	cmdGetFirmwareRevision                CommandID = 0x31
	cmdSetCCActiveThreshold               CommandID = 0x32
	cmdLumaPing                           CommandID = 0x33
	cmdResetBoardThresholds               CommandID = 0x34
	cmdSetKeySampling                     CommandID = 0x35
	cmdResetWheelsThreshold               CommandID = 0x36
	cmdSetPitchWheelCenterThreshold       CommandID = 0x37
	cmdCalibrateExpressionPedal           CommandID = 0x38
	cmdResetExpressionPedalBounds         CommandID = 0x39
	cmdGetBoardThresholdValues            CommandID = 0x3a
	cmdGetBoardSensitivityValues          CommandID = 0x3b
	cmdSetPeripheralChannels              CommandID = 0x3c
	cmdGetPeripheralChannels              CommandID = 0x3d
	cmdPeripheralCalibrationData          CommandID = 0x3e
	cmdSetAftertouchTriggerDelay          CommandID = 0x3f
	cmdGetAftertouchTriggerDelay          CommandID = 0x40
	cmdSetLumatouchNoteOffDelay           CommandID = 0x41
	cmdGetLumatouchNoteOffDelay           CommandID = 0x42
	cmdSetExpressionPedalThreshold        CommandID = 0x43
	cmdGetExpressionPedalThreshold        CommandID = 0x44
	cmdInvertSustainPedal                 CommandID = 0x45
)

var commandIDNames = map[CommandID]string{
	cmdChangeKeyNote:               "ChangeKeyNote",
	cmdSetKeyColour:                "SetKeyColour",
	cmdSaveProgram:                 "SaveProgram",
	cmdSetFootCtrlSensitivity:      "SetFootCtrlSensitivity",
	cmdInvertFootController:        "InvertFootController",
	cmdMacroColourOn:               "MacroColourOn",
	cmdMacroColourOff:              "MacroColourOff",
	cmdLightOnKeystrokes:           "LightOnKeystrokes",
	cmdSetVelocityConfig:           "SetVelocityConfig",
	cmdSaveVelocityConfig:          "SaveVelocityConfig",
	cmdResetVelocityConfig:         "ResetVelocityConfig",
	cmdSetFaderConfig:              "SetFaderConfig",
	cmdSaveFaderConfig:             "SaveFaderConfig",
	cmdResetFaderConfig:            "ResetFaderConfig",
	cmdSetAftertouchFlag:           "SetAftertouchFlag",
	cmdCalibrateAftertouch:         "CalibrateAftertouch",
	cmdSetAftertouchConfig:         "SetAftertouchConfig",
	cmdSaveAftertouchConfig:        "SaveAftertouchConfig",
	cmdResetAftertouchConfig:       "ResetAftertouchConfig",
	cmdGetRedLedConfig:             "GetRedLedConfig",
	cmdGetGreenLedConfig:           "GetGreenLedConfig",
	cmdGetBlueLedConfig:            "GetBlueLedConfig",
	cmdGetChannelConfig:            "GetChannelConfig",
	cmdGetNoteConfig:               "GetNoteConfig",
	cmdGetKeytypeConfig:            "GetKeytypeConfig",
	cmdGetMaxThreshold:             "GetMaxThreshold",
	cmdGetMinThreshold:             "GetMinThreshold",
	cmdGetAftertouchMax:            "GetAftertouchMax",
	cmdGetKeyValidity:              "GetKeyValidity",
	cmdGetVelocityConfig:           "GetVelocityConfig",
	cmdGetFaderConfig:              "GetFaderConfig",
	cmdGetAftertouchConfig:         "GetAftertouchConfig",
	cmdSetVelocityIntervals:        "SetVelocityIntervals",
	cmdGetVelocityIntervals:        "GetVelocityIntervals",
	cmdGetFaderTypeConfig:          "GetFaderTypeConfig",
	cmdGetSerialIdentity:           "GetSerialIdentity",
	cmdCalibrateKeys:               "CalibrateKeys",
	cmdDemoMode:                    "DemoMode",
	cmdCalibratePitchModWheel:      "CalibratePitchModWheel",
	cmdSetModWheelSensitivity:      "SetModWheelSensitivity",
	cmdSetPitchWheelSensitivity:    "SetPitchWheelSensitivity",
	cmdSetKeyMaxThreshold:          "SetKeyMaxThreshold",
	cmdSetKeyMinThreshold:          "SetKeyMinThreshold",
	cmdSetKeyFaderSensitivity:      "SetKeyFaderSensitivity",
	cmdSetKeyAftertouchSensitivity: "SetKeyAftertouchSensitivity",
	cmdSetLumatouchConfig:          "SetLumatouchConfig",
	cmdSaveLumatouchConfig:         "SaveLumatouchConfig",
	cmdResetLumatouchConfig:        "ResetLumatouchConfig",
	cmdGetLumatouchConfig:          "GetLumatouchConfig",
	cmdGetFirmwareRevision:         "GetFirmwareRevision",
	cmdSetCCActiveThreshold:        "SetCCActiveThreshold",
	cmdLumaPing:                    "LumaPing",
	cmdResetBoardThresholds:        "ResetBoardThresholds",
	cmdSetKeySampling:              "SetKeySampling",
	cmdResetWheelsThreshold:        "ResetWheelsThreshold",
	cmdSetPitchWheelCenterThreshold: "SetPitchWheelCenterThreshold",
	cmdCalibrateExpressionPedal:     "CalibrateExpressionPedal",
	cmdResetExpressionPedalBounds:   "ResetExpressionPedalBounds",
	cmdGetBoardThresholdValues:      "GetBoardThresholdValues",
	cmdGetBoardSensitivityValues:    "GetBoardSensitivityValues",
	cmdSetPeripheralChannels:        "SetPeripheralChannels",
	cmdGetPeripheralChannels:        "GetPeripheralChannels",
	cmdPeripheralCalibrationData:    "PeripheralCalibrationData",
	cmdSetAftertouchTriggerDelay:    "SetAftertouchTriggerDelay",
	cmdGetAftertouchTriggerDelay:    "GetAftertouchTriggerDelay",
	cmdSetLumatouchNoteOffDelay:     "SetLumatouchNoteOffDelay",
	cmdGetLumatouchNoteOffDelay:     "GetLumatouchNoteOffDelay",
	cmdSetExpressionPedalThreshold:  "SetExpressionPedalThreshold",
	cmdGetExpressionPedalThreshold:  "GetExpressionPedalThreshold",
	cmdInvertSustainPedal:           "InvertSustainPedal",
}

// Byte returns the wire encoding of id.
func (id CommandID) Byte() uint8 {
	return uint8(id)
}

func (id CommandID) String() string {
	if name, ok := commandIDNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02x)", uint8(id))
}

// DecodeCommandID validates a raw wire byte against the closed catalog.
func DecodeCommandID(raw uint8) (CommandID, error) {
	id := CommandID(raw)
	if _, ok := commandIDNames[id]; !ok {
		return 0, newErrf(KindUnknownCommandID, "unknown command id 0x%02x", raw)
	}
	return id, nil
}
