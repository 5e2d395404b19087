package lumatone

import "fmt"

// BoardIndex addresses one of the five 56-key octave boards, or the
// "server" board for global/peripheral commands. It is the wire value
// directly: Server=0, Octave1..Octave5=1..5.
type BoardIndex uint8

const (
	Server BoardIndex = iota
	Octave1
	Octave2
	Octave3
	Octave4
	Octave5
)

// NewBoardIndex validates a raw wire byte into a BoardIndex.
func NewBoardIndex(raw uint8) (BoardIndex, error) {
	if raw > uint8(Octave5) {
		return 0, newErrf(KindInvalidBoardIndex, "board index %d out of range 0..5", raw)
	}
	return BoardIndex(raw), nil
}

// Byte returns the wire encoding of b.
func (b BoardIndex) Byte() uint8 {
	return uint8(b)
}

func (b BoardIndex) String() string {
	switch b {
	case Server:
		return "Server"
	case Octave1:
		return "Octave1"
	case Octave2:
		return "Octave2"
	case Octave3:
		return "Octave3"
	case Octave4:
		return "Octave4"
	case Octave5:
		return "Octave5"
	default:
		return fmt.Sprintf("BoardIndex(%d)", uint8(b))
	}
}

// IsOctave reports whether b addresses one of the five key boards, as
// opposed to the Server board.
func (b BoardIndex) IsOctave() bool {
	return b >= Octave1 && b <= Octave5
}
