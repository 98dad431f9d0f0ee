package hexdump

import (
	"strings"
	"testing"
)

func TestFormatOffsetAndAscii(t *testing.T) {
	data := []byte("Hello, world!!!!") // exactly 16 bytes
	got := Format(0x1000, data)
	if !strings.HasPrefix(got, "00001000") {
		t.Errorf("Format() = %q, want prefix with offset 00001000", got)
	}
	if !strings.Contains(got, "|Hello, world!!!!|") {
		t.Errorf("Format() = %q, want ASCII column with the input text", got)
	}
}

func TestFormatPadsShortFinalRow(t *testing.T) {
	got := Format(0, []byte{0x41, 0x42})
	if !strings.Contains(got, "|AB|") {
		t.Errorf("Format() = %q, want ASCII column |AB|", got)
	}
}

func TestFormatNonPrintableBytesAsDot(t *testing.T) {
	got := Format(0, []byte{0x00, 0xFF, 'x'})
	if !strings.Contains(got, "|..x|") {
		t.Errorf("Format() = %q, want non-printable bytes rendered as '.'", got)
	}
}
