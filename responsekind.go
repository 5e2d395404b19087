package lumatone

// ResponseKind tags which of the closed Response variants a value holds.
type ResponseKind uint8

const (
	RespAck ResponseKind = iota
	RespPong
	RespRedLEDConfig
	RespGreenLEDConfig
	RespBlueLEDConfig
	RespChannelConfig
	RespNoteConfig
	RespKeyTypeConfig
	RespKeyMaxThresholds
	RespKeyMinThresholds
	RespAftertouchMaxThresholds
	RespKeyValidity
	RespVelocityConfig
	RespFaderConfig
	RespAftertouchConfig
	RespLumatouchConfig
	RespVelocityIntervalConfig
	RespSerialID
	RespFirmwareRevision
	RespBoardThresholds
	RespBoardSensitivity
	RespPeripheralChannels
	RespExpressionCalibrationStatus
	RespWheelCalibrationStatus
	RespAftertouchTriggerDelay
	RespLumatouchNoteOffDelay
	RespExpressionPedalThreshold
)

func (k ResponseKind) String() string {
	switch k {
	case RespAck:
		return "Ack"
	case RespPong:
		return "Pong"
	case RespRedLEDConfig:
		return "RedLEDConfig"
	case RespGreenLEDConfig:
		return "GreenLEDConfig"
	case RespBlueLEDConfig:
		return "BlueLEDConfig"
	case RespChannelConfig:
		return "ChannelConfig"
	case RespNoteConfig:
		return "NoteConfig"
	case RespKeyTypeConfig:
		return "KeyTypeConfig"
	case RespKeyMaxThresholds:
		return "KeyMaxThresholds"
	case RespKeyMinThresholds:
		return "KeyMinThresholds"
	case RespAftertouchMaxThresholds:
		return "AftertouchMaxThresholds"
	case RespKeyValidity:
		return "KeyValidity"
	case RespVelocityConfig:
		return "VelocityConfig"
	case RespFaderConfig:
		return "FaderConfig"
	case RespAftertouchConfig:
		return "AftertouchConfig"
	case RespLumatouchConfig:
		return "LumatouchConfig"
	case RespVelocityIntervalConfig:
		return "VelocityIntervalConfig"
	case RespSerialID:
		return "SerialId"
	case RespFirmwareRevision:
		return "FirmwareRevision"
	case RespBoardThresholds:
		return "BoardThresholds"
	case RespBoardSensitivity:
		return "BoardSensitivity"
	case RespPeripheralChannels:
		return "PeripheralChannels"
	case RespExpressionCalibrationStatus:
		return "ExpressionCalibrationStatus"
	case RespWheelCalibrationStatus:
		return "WheelCalibrationStatus"
	case RespAftertouchTriggerDelay:
		return "AftertouchTriggerDelay"
	case RespLumatouchNoteOffDelay:
		return "LumatouchNoteOffDelay"
	case RespExpressionPedalThreshold:
		return "ExpressionPedalThreshold"
	default:
		return "Unknown"
	}
}
