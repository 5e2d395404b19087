package lumatone

import "fmt"

// Kind classifies an Error so callers can test for a category of failure
// with errors.Is without depending on the exact wrapped message.
type Kind int

const (
	// KindUnknown is the zero value; never returned by this package.
	KindUnknown Kind = iota

	// Validation
	KindInvalidBoardIndex
	KindInvalidMidiChannel
	KindInvalidLumatoneKeyIndex
	KindInvalidPresetIndex

	// Codec
	KindNotLumatoneMessage
	KindMessageTooShort
	KindMessagePayloadTooShort
	KindMessagePayloadInvalid
	KindUnknownCommandID
	KindUnexpectedCommandID
	KindInvalidResponseMessage
	KindResponseDecodingError

	// Driver
	KindInvalidStateTransition
	KindDeviceBusyAbandoned
	KindResponseTimedOut

	// Transport
	KindDeviceDetectionFailed
	KindDeviceConnectionError
	KindDeviceSendError

	// Lifecycle
	KindDriverShutdown
)

func (k Kind) String() string {
	switch k {
	case KindInvalidBoardIndex:
		return "InvalidBoardIndex"
	case KindInvalidMidiChannel:
		return "InvalidMidiChannel"
	case KindInvalidLumatoneKeyIndex:
		return "InvalidLumatoneKeyIndex"
	case KindInvalidPresetIndex:
		return "InvalidPresetIndex"
	case KindNotLumatoneMessage:
		return "NotLumatoneMessage"
	case KindMessageTooShort:
		return "MessageTooShort"
	case KindMessagePayloadTooShort:
		return "MessagePayloadTooShort"
	case KindMessagePayloadInvalid:
		return "MessagePayloadInvalid"
	case KindUnknownCommandID:
		return "UnknownCommandId"
	case KindUnexpectedCommandID:
		return "UnexpectedCommandId"
	case KindInvalidResponseMessage:
		return "InvalidResponseMessage"
	case KindResponseDecodingError:
		return "ResponseDecodingError"
	case KindInvalidStateTransition:
		return "InvalidStateTransition"
	case KindDeviceBusyAbandoned:
		return "DeviceBusyAbandoned"
	case KindResponseTimedOut:
		return "ResponseTimedOut"
	case KindDeviceDetectionFailed:
		return "DeviceDetectionFailed"
	case KindDeviceConnectionError:
		return "DeviceConnectionError"
	case KindDeviceSendError:
		return "DeviceSendError"
	case KindDriverShutdown:
		return "DriverShutdown"
	default:
		return "Unknown"
	}
}

// Error is the single error type surfaced by this package. It carries a
// Kind for programmatic matching plus a human-readable message, and wraps
// an underlying cause when there is one.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.msg != "" {
		if e.err != nil {
			return fmt.Sprintf("lumatone: %s: %s: %s", e.Kind, e.msg, e.err)
		}
		return fmt.Sprintf("lumatone: %s: %s", e.Kind, e.msg)
	}
	if e.err != nil {
		return fmt.Sprintf("lumatone: %s: %s", e.Kind, e.err)
	}
	return fmt.Sprintf("lumatone: %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, lumatone.Err(KindResponseTimedOut)) works without a
// shared sentinel value.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newErr(k Kind, msg string) error {
	return &Error{Kind: k, msg: msg}
}

func newErrf(k Kind, format string, args ...any) error {
	return &Error{Kind: k, msg: fmt.Sprintf(format, args...)}
}

func wrapErr(k Kind, msg string, cause error) error {
	return &Error{Kind: k, msg: msg, err: cause}
}

// Err returns a bare sentinel-like *Error of the given Kind, suitable for
// use with errors.Is on the caller side.
func Err(k Kind) error {
	return &Error{Kind: k}
}
