package lumatone

import "fmt"

// keyTypeCode values as used on the wire and in preset files, without
// the "fader up is null" bit.
const (
	keyTypeNoteOnOff            uint8 = 1
	keyTypeContinuousController uint8 = 2
	keyTypeLumaTouch            uint8 = 3
	keyTypeDisabled             uint8 = 4
	keyTypeFaderUpIsNullBit     uint8 = 0x10
)

// KeyFunction is the closed set of behaviors a key can be configured
// with. The zero value is the Disabled variant.
type KeyFunction struct {
	kind kind

	Channel       MidiChannel
	Note          uint8 // NoteOnOff, LumaTouch: note or CC number, 0..127
	CCNum         uint8 // ContinuousController: CC number, 0..127
	FaderUpIsNull bool  // ContinuousController, LumaTouch only
}

type kind uint8

const (
	kindDisabled kind = iota
	kindNoteOnOff
	kindContinuousController
	kindLumaTouch
)

// NoteOnOff builds a key function that emits a MIDI note on/off pair.
func NoteOnOff(channel MidiChannel, note uint8) KeyFunction {
	return KeyFunction{kind: kindNoteOnOff, Channel: channel, Note: note}
}

// ContinuousController builds a key function that emits a MIDI CC value
// as the key is moved.
func ContinuousController(channel MidiChannel, ccNum uint8, faderUpIsNull bool) KeyFunction {
	return KeyFunction{kind: kindContinuousController, Channel: channel, CCNum: ccNum, FaderUpIsNull: faderUpIsNull}
}

// LumaTouch builds a key function that emits continuous pressure data on
// a note channel.
func LumaTouch(channel MidiChannel, note uint8, faderUpIsNull bool) KeyFunction {
	return KeyFunction{kind: kindLumaTouch, Channel: channel, Note: note, FaderUpIsNull: faderUpIsNull}
}

// Disabled builds a key function for a key that emits nothing.
func Disabled() KeyFunction {
	return KeyFunction{kind: kindDisabled}
}

// IsDisabled reports whether f is the Disabled variant.
func (f KeyFunction) IsDisabled() bool {
	return f.kind == kindDisabled
}

// typeCode returns the wire/INI type code (1-4), without the null bit.
func (f KeyFunction) typeCode() uint8 {
	switch f.kind {
	case kindNoteOnOff:
		return keyTypeNoteOnOff
	case kindContinuousController:
		return keyTypeContinuousController
	case kindLumaTouch:
		return keyTypeLumaTouch
	default:
		return keyTypeDisabled
	}
}

// wireTypeByte returns the byte transmitted in SetKeyFunction's type_code
// position: typeCode with bit 4 set when FaderUpIsNull is true.
func (f KeyFunction) wireTypeByte() uint8 {
	b := f.typeCode()
	if f.FaderUpIsNull && (f.kind == kindContinuousController || f.kind == kindLumaTouch) {
		b |= keyTypeFaderUpIsNullBit
	}
	return b
}

// noteOrCCByte returns the byte transmitted in SetKeyFunction's
// note_or_cc position.
func (f KeyFunction) noteOrCCByte() uint8 {
	if f.kind == kindContinuousController {
		return f.CCNum
	}
	return f.Note
}

// keyFunctionFromWire reconstructs a KeyFunction from a SetKeyFunction
// payload's channel/type/note-or-cc bytes. channelByte is zero-indexed.
func keyFunctionFromWire(noteOrCC, channelByte, typeByte uint8) (KeyFunction, error) {
	ch, err := NewMidiChannelZeroIndexed(channelByte)
	if err != nil {
		return KeyFunction{}, err
	}
	faderUpIsNull := typeByte&keyTypeFaderUpIsNullBit != 0
	code := typeByte &^ keyTypeFaderUpIsNullBit
	switch code {
	case keyTypeNoteOnOff:
		return NoteOnOff(ch, noteOrCC), nil
	case keyTypeContinuousController:
		return ContinuousController(ch, noteOrCC, faderUpIsNull), nil
	case keyTypeLumaTouch:
		return LumaTouch(ch, noteOrCC, faderUpIsNull), nil
	default:
		return Disabled(), nil
	}
}

// keyFunctionKindFromINICode maps the 7-bit INI KTyp_N code to a KeyFunction
// kind tag, per the preset format's (narrower, null-bit-free) encoding.
// Unknown codes map to Disabled; the caller is expected to log a
// warning in that case.
func keyFunctionKindFromINICode(code uint8) kind {
	switch code {
	case keyTypeNoteOnOff:
		return kindNoteOnOff
	case keyTypeContinuousController:
		return kindContinuousController
	case keyTypeLumaTouch:
		return kindLumaTouch
	default:
		return kindDisabled
	}
}

// KeyFunctionFromINI builds a KeyFunction from a preset file's per-key
// fields: the KTyp_N code (possibly absent, per KeyTypeCodeDefault), the
// Key_N note-or-CC number, the Chan_N channel, and whether the value is
// interpreted as a null marker when the fader is at rest. validKind
// reports whether code was a recognized type code, so the caller can log
// a warning for unknown codes while still getting a usable Disabled
// value back.
func KeyFunctionFromINI(code uint8, channel MidiChannel, noteOrCC uint8, faderUpIsNull bool) (fn KeyFunction, validKind bool) {
	k := keyFunctionKindFromINICode(code)
	switch k {
	case kindNoteOnOff:
		return NoteOnOff(channel, noteOrCC), true
	case kindContinuousController:
		return ContinuousController(channel, noteOrCC, faderUpIsNull), true
	case kindLumaTouch:
		return LumaTouch(channel, noteOrCC, faderUpIsNull), true
	default:
		return Disabled(), code == keyTypeDisabled
	}
}

// KeyTypeCodeDefault is the KTyp_N code implied when a preset file omits
// the key for a key that is otherwise configured.
const KeyTypeCodeDefault = keyTypeNoteOnOff

// INICode returns the KTyp_N code for f: 1/2/3/4 for
// NoteOnOff/ContinuousController/LumaTouch/Disabled.
func (f KeyFunction) INICode() uint8 {
	return f.typeCode()
}

// INIValue returns the Key_N field's value: the CC number for
// ContinuousController, the note number for NoteOnOff/LumaTouch, 0 for
// Disabled.
func (f KeyFunction) INIValue() uint8 {
	return f.noteOrCCByte()
}

// INIFaderUpIsNull reports f's FaderUpIsNull flag. The preset text form
// has no field for it: preset.Render does not write it, and preset.Parse
// reads every key with the flag false.
func (f KeyFunction) INIFaderUpIsNull() bool {
	return f.FaderUpIsNull
}

func (f KeyFunction) String() string {
	switch f.kind {
	case kindNoteOnOff:
		return fmt.Sprintf("NoteOnOff{channel=%s, note=%d}", f.Channel, f.Note)
	case kindContinuousController:
		return fmt.Sprintf("ContinuousController{channel=%s, cc=%d, faderUpIsNull=%t}", f.Channel, f.CCNum, f.FaderUpIsNull)
	case kindLumaTouch:
		return fmt.Sprintf("LumaTouch{channel=%s, note=%d, faderUpIsNull=%t}", f.Channel, f.Note, f.FaderUpIsNull)
	default:
		return "Disabled"
	}
}
