package lumatone

import "fmt"

// MidiChannel is a MIDI channel number. It is always stored one-indexed
// (1..=16); the wire form is the zero-indexed projection.
type MidiChannel uint8

// NewMidiChannel validates a one-indexed channel 1..=16.
func NewMidiChannel(oneIndexed uint8) (MidiChannel, error) {
	if oneIndexed < 1 || oneIndexed > 16 {
		return 0, newErrf(KindInvalidMidiChannel, "midi channel %d out of range 1..16", oneIndexed)
	}
	return MidiChannel(oneIndexed), nil
}

// NewMidiChannelZeroIndexed validates a zero-indexed wire byte 0..=15.
func NewMidiChannelZeroIndexed(zeroIndexed uint8) (MidiChannel, error) {
	if zeroIndexed > 15 {
		return 0, newErrf(KindInvalidMidiChannel, "midi channel byte %d out of range 0..15", zeroIndexed)
	}
	return MidiChannel(zeroIndexed + 1), nil
}

// OneIndexed returns the channel as stored, 1..=16.
func (c MidiChannel) OneIndexed() uint8 {
	return uint8(c)
}

// ZeroIndexedByte returns the wire projection, 0..=15.
func (c MidiChannel) ZeroIndexedByte() uint8 {
	return uint8(c) - 1
}

func (c MidiChannel) String() string {
	return fmt.Sprintf("ch%d", uint8(c))
}

// PresetIndex is a bounded on-device preset slot, 0..=9.
type PresetIndex uint8

// NewPresetIndex validates raw into a PresetIndex.
func NewPresetIndex(raw uint8) (PresetIndex, error) {
	if raw > 9 {
		return 0, newErrf(KindInvalidPresetIndex, "preset index %d out of range 0..9", raw)
	}
	return PresetIndex(raw), nil
}

// Byte returns the wire encoding of p.
func (p PresetIndex) Byte() uint8 {
	return uint8(p)
}

func (p PresetIndex) String() string {
	return fmt.Sprintf("preset%d", uint8(p))
}
