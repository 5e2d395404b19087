package lumatone

import "testing"

func TestUnpack8BitPairsReassemblesNibbles(t *testing.T) {
	payload := []byte{0x3, 0xc, 0x7, 0xf}
	got, err := unpack8BitPairs(payload, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x3c, 0x7f}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnpack8BitPairsTooShort(t *testing.T) {
	if _, err := unpack8BitPairs([]byte{0x1}, 1); err == nil {
		t.Fatalf("expected error for a payload shorter than count*2")
	}
}

func TestUnpack12BitFrom7BitRoundTrips(t *testing.T) {
	// hi/lo pair for value 0xabc = (0x2a << 6) | 0x3c
	payload := []byte{0x2a, 0x3c}
	got, err := unpack12BitFrom7Bit(payload, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != 0xabc {
		t.Fatalf("got 0x%x, want 0xabc", got[0])
	}
}

func TestUnpack12BitFrom4BitRoundTrips(t *testing.T) {
	payload := []byte{0xa, 0xb, 0xc}
	got, err := unpack12BitFrom4Bit(payload, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != 0xabc {
		t.Fatalf("got 0x%x, want 0xabc", got[0])
	}
}

func TestIntervalTableEncodeDecodeRoundTrips(t *testing.T) {
	var values [IntervalTableSize]uint16
	for i := range values {
		values[i] = uint16(i*31) & 0xfff
	}
	table, err := NewIntervalTable(values[:])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	encoded := encodeIntervalTable(table)
	decoded, err := decodeIntervalTable(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded != table {
		t.Fatalf("round trip mismatch: got %v, want %v", decoded, table)
	}
}

func TestNewIntervalTableRejectsOutOfRangeEntry(t *testing.T) {
	values := make([]uint16, IntervalTableSize)
	values[5] = 0x1000
	if _, err := NewIntervalTable(values); err == nil {
		t.Fatalf("expected error for a 13-bit entry")
	}
}

func TestNewSysexTableRejectsHighBitSet(t *testing.T) {
	data := make([]byte, TableSize)
	data[10] = 0x80
	if _, err := NewSysexTable(data); err == nil {
		t.Fatalf("expected error for a table entry above 0x7f")
	}
}

func TestSysexTableReversedIsInvolution(t *testing.T) {
	data := make([]byte, TableSize)
	for i := range data {
		data[i] = uint8(i % 0x7f)
	}
	table, err := NewSysexTable(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	twice := table.reversed().reversed()
	if twice != table {
		t.Fatalf("reversing twice should return the original table")
	}
	if table.reversed()[0] != table[TableSize-1] {
		t.Fatalf("reversed()[0] should be the original's last entry")
	}
}
