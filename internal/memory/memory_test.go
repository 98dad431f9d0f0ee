package memory

import "testing"

func TestBiosRejectsWrongSize(t *testing.T) {
	if _, err := NewBios(make([]byte, BiosSize-1)); err == nil {
		t.Errorf("expected error for short image, got nil")
	}
	if _, err := NewBios(make([]byte, BiosSize+1)); err == nil {
		t.Errorf("expected error for long image, got nil")
	}
}

func TestBiosLoad32LittleEndian(t *testing.T) {
	data := make([]byte, BiosSize)
	data[0], data[1], data[2], data[3] = 0xEF, 0xBE, 0xAD, 0xDE
	bios, err := NewBios(data)
	if err != nil {
		t.Fatalf("NewBios: %v", err)
	}
	if got := bios.Load32(0); got != 0xDEADBEEF {
		t.Errorf("Load32(0) = %#08x, want 0xDEADBEEF", got)
	}
	if got := bios.Load8(1); got != 0xBE {
		t.Errorf("Load8(1) = %#02x, want 0xBE", got)
	}
}

func TestRamZeroInitialized(t *testing.T) {
	ram := NewRam()
	for off := uint32(0); off < RamSize; off += 0x40000 {
		if got := ram.Load32(off); got != 0 {
			t.Errorf("Load32(%#x) = %#08x, want 0", off, got)
		}
	}
}

func TestRamRoundTrip(t *testing.T) {
	ram := NewRam()
	ram.Store32(0x10, 0xDEADBEEF)
	if got := ram.Load32(0x10); got != 0xDEADBEEF {
		t.Errorf("Load32(0x10) = %#08x, want 0xDEADBEEF", got)
	}
	ram.Store16(0x20, 0xBEEF)
	if got := ram.Load16(0x20); got != 0xBEEF {
		t.Errorf("Load16(0x20) = %#04x, want 0xBEEF", got)
	}
	ram.Store8(0x30, 0x42)
	if got := ram.Load8(0x30); got != 0x42 {
		t.Errorf("Load8(0x30) = %#02x, want 0x42", got)
	}
}
