package lumatone

// CommandKind tags which of the closed Command variants a value holds.
type CommandKind uint8

const (
	KindPing CommandKind = iota
	KindSetKeyFunction
	KindSetKeyColor
	KindSaveProgram
	KindSetExpressionPedalSensitivity
	KindSetModWheelSensitivity
	KindSetPitchWheelSensitivity
	KindInvertFootController
	KindInvertSustainPedal
	KindSetLightOnKeystrokes
	KindSetAftertouchEnabled
	KindEnableDemoMode
	KindEnablePitchModWheelCalibrationMode
	KindEnableExpressionPedalCalibrationMode
	KindSetMacroButtonActiveColor
	KindSetMacroButtonInactiveColor
	KindSetVelocityConfig
	KindSetFaderConfig
	KindSetAftertouchConfig
	KindSetLumatouchConfig
	KindSetVelocityIntervals
	KindSetKeyMaximumThreshold
	KindSetKeyMinimumThreshold
	KindSetPitchWheelZeroThreshold
	KindSetKeyFaderSensitivity
	KindSetKeyAftertouchSensitivity
	KindSetCCActiveThreshold
	KindResetBoardThresholds
	KindSetAftertouchTriggerDelay
	KindGetAftertouchTriggerDelay
	KindSetLumatouchNoteOffDelay
	KindGetLumatouchNoteOffDelay
	KindGetRedLEDConfig
	KindGetGreenLEDConfig
	KindGetBlueLEDConfig
	KindGetMidiChannelConfig
	KindGetNoteConfig
	KindGetKeyTypeConfig
	KindGetMaxFaderThreshold
	KindGetMinFaderThreshold
	KindGetMaxAftertouchThreshold
	KindGetKeyValidity
	KindGetFaderTypeConfig
	KindGetBoardThresholdValues
	KindGetBoardSensitivityValues
	KindGetVelocityConfig
	KindGetVelocityIntervalConfig
	KindGetFaderConfig
	KindGetAftertouchConfig
	KindGetLumatouchConfig
	KindGetSerialID
	KindGetFirmwareRevision
	KindStartAftertouchCalibration
	KindStartKeyCalibration
	KindSaveVelocityConfig
	KindResetVelocityConfig
	KindSaveFaderConfig
	KindResetFaderConfig
	KindSaveAftertouchConfig
	KindResetAftertouchConfig
	KindSaveLumatouchConfig
	KindResetLumatouchConfig
	KindResetWheelThresholds
	KindResetExpressionPedalBounds
	KindEnableKeySampling
	KindSetPeripheralChannels
	KindGetPeripheralChannels
	KindSetExpressionPedalADCThreshold
	KindGetExpressionPedalADCThreshold
)

var commandKindNames = map[CommandKind]string{
	KindPing:                                 "Ping",
	KindSetKeyFunction:                       "SetKeyFunction",
	KindSetKeyColor:                          "SetKeyColor",
	KindSaveProgram:                          "SaveProgram",
	KindSetExpressionPedalSensitivity:        "SetExpressionPedalSensitivity",
	KindSetModWheelSensitivity:               "SetModWheelSensitivity",
	KindSetPitchWheelSensitivity:             "SetPitchWheelSensitivity",
	KindInvertFootController:                 "InvertFootController",
	KindInvertSustainPedal:                   "InvertSustainPedal",
	KindSetLightOnKeystrokes:                 "SetLightOnKeystrokes",
	KindSetAftertouchEnabled:                 "SetAftertouchEnabled",
	KindEnableDemoMode:                       "EnableDemoMode",
	KindEnablePitchModWheelCalibrationMode:   "EnablePitchModWheelCalibrationMode",
	KindEnableExpressionPedalCalibrationMode: "EnableExpressionPedalCalibrationMode",
	KindSetMacroButtonActiveColor:            "SetMacroButtonActiveColor",
	KindSetMacroButtonInactiveColor:          "SetMacroButtonInactiveColor",
	KindSetVelocityConfig:                    "SetVelocityConfig",
	KindSetFaderConfig:                       "SetFaderConfig",
	KindSetAftertouchConfig:                  "SetAftertouchConfig",
	KindSetLumatouchConfig:                   "SetLumatouchConfig",
	KindSetVelocityIntervals:                 "SetVelocityIntervals",
	KindSetKeyMaximumThreshold:               "SetKeyMaximumThreshold",
	KindSetKeyMinimumThreshold:               "SetKeyMinimumThreshold",
	KindSetPitchWheelZeroThreshold:           "SetPitchWheelZeroThreshold",
	KindSetKeyFaderSensitivity:               "SetKeyFaderSensitivity",
	KindSetKeyAftertouchSensitivity:          "SetKeyAftertouchSensitivity",
	KindSetCCActiveThreshold:                 "SetCCActiveThreshold",
	KindResetBoardThresholds:                 "ResetBoardThresholds",
	KindSetAftertouchTriggerDelay:            "SetAftertouchTriggerDelay",
	KindGetAftertouchTriggerDelay:            "GetAftertouchTriggerDelay",
	KindSetLumatouchNoteOffDelay:             "SetLumatouchNoteOffDelay",
	KindGetLumatouchNoteOffDelay:             "GetLumatouchNoteOffDelay",
	KindGetRedLEDConfig:                      "GetRedLEDConfig",
	KindGetGreenLEDConfig:                    "GetGreenLEDConfig",
	KindGetBlueLEDConfig:                     "GetBlueLEDConfig",
	KindGetMidiChannelConfig:                 "GetMidiChannelConfig",
	KindGetNoteConfig:                        "GetNoteConfig",
	KindGetKeyTypeConfig:                     "GetKeyTypeConfig",
	KindGetMaxFaderThreshold:                 "GetMaxFaderThreshold",
	KindGetMinFaderThreshold:                 "GetMinFaderThreshold",
	KindGetMaxAftertouchThreshold:            "GetMaxAftertouchThreshold",
	KindGetKeyValidity:                       "GetKeyValidity",
	KindGetFaderTypeConfig:                   "GetFaderTypeConfig",
	KindGetBoardThresholdValues:              "GetBoardThresholdValues",
	KindGetBoardSensitivityValues:            "GetBoardSensitivityValues",
	KindGetVelocityConfig:                    "GetVelocityConfig",
	KindGetVelocityIntervalConfig:            "GetVelocityIntervalConfig",
	KindGetFaderConfig:                       "GetFaderConfig",
	KindGetAftertouchConfig:                  "GetAftertouchConfig",
	KindGetLumatouchConfig:                   "GetLumatouchConfig",
	KindGetSerialID:                          "GetSerialId",
	KindGetFirmwareRevision:                  "GetFirmwareRevision",
	KindStartAftertouchCalibration:           "StartAftertouchCalibration",
	KindStartKeyCalibration:                  "StartKeyCalibration",
	KindSaveVelocityConfig:                   "SaveVelocityConfig",
	KindResetVelocityConfig:                  "ResetVelocityConfig",
	KindSaveFaderConfig:                      "SaveFaderConfig",
	KindResetFaderConfig:                     "ResetFaderConfig",
	KindSaveAftertouchConfig:                 "SaveAftertouchConfig",
	KindResetAftertouchConfig:                "ResetAftertouchConfig",
	KindSaveLumatouchConfig:                  "SaveLumatouchConfig",
	KindResetLumatouchConfig:                 "ResetLumatouchConfig",
	KindResetWheelThresholds:                 "ResetWheelThresholds",
	KindResetExpressionPedalBounds:           "ResetExpressionPedalBounds",
	KindEnableKeySampling:                    "EnableKeySampling",
	KindSetPeripheralChannels:                "SetPeripheralChannels",
	KindGetPeripheralChannels:                "GetPeripheralChannels",
	KindSetExpressionPedalADCThreshold:       "SetExpressionPedalADCThreshold",
	KindGetExpressionPedalADCThreshold:       "GetExpressionPedalADCThreshold",
}

func (k CommandKind) String() string {
	if name, ok := commandKindNames[k]; ok {
		return name
	}
	return "Unknown"
}
