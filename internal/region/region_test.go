package region

import "testing"

func TestMaskMirrors(t *testing.T) {
	cases := []struct {
		addr uint32
		want uint32
	}{
		{0x00000010, 0x00000010}, // KUSEG
		{0x80000010, 0x00000010}, // KSEG0
		{0xA0000010, 0x00000010}, // KSEG1
		{0xC0000010, 0xC0000010}, // KSEG2, unmasked
		{0xBFC00000, 0x1FC00000}, // BIOS entry vector
	}
	for _, c := range cases {
		if got := Mask(c.addr); got != c.want {
			t.Errorf("Mask(%#08x) = %#08x, want %#08x", c.addr, got, c.want)
		}
	}
}

func TestOfClassifiesEveryTableEntry(t *testing.T) {
	for _, r := range table {
		got, ok := Of(r.Base)
		if !ok {
			t.Fatalf("Of(%#08x) base of %s not recognized", r.Base, r.Name)
		}
		if got.Name != r.Name {
			t.Errorf("Of(%#08x) = %s, want %s", r.Base, got.Name, r.Name)
		}
		if _, ok := Of(r.Base + r.Size - 1); !ok {
			t.Errorf("Of(%#08x) last byte of %s not recognized", r.Base+r.Size-1, r.Name)
		}
		if _, ok := Of(r.Base + r.Size); ok {
			t.Errorf("Of(%#08x) one past %s should be unmapped", r.Base+r.Size, r.Name)
		}
	}
}

func TestOfUnmapped(t *testing.T) {
	if _, ok := Of(0x60000000); ok {
		t.Errorf("Of(0x60000000) should be unmapped")
	}
}

func TestRegionsDoNotOverlap(t *testing.T) {
	for i, a := range table {
		for j, b := range table {
			if i == j {
				continue
			}
			if a.Base < b.Base+b.Size && b.Base < a.Base+a.Size {
				t.Errorf("region %s overlaps %s", a.Name, b.Name)
			}
		}
	}
}
