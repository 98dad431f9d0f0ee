package disasm

import (
	"strings"
	"testing"

	"github.com/r3000core/psxcore/internal/decode"
)

func TestFormatRecognizedOpcodes(t *testing.T) {
	cases := []struct {
		word uint32
		want string
	}{
		{0x3C010000, "lui"},
		{0x34210010, "ori"},
		{0xAC220000, "sw"},
		{0x8C230000, "lw"},
		{0x24010001, "addiu"},
		{0x10000002, "beq"},
	}
	for _, c := range cases {
		got := Format(decode.Decode(c.word))
		if !strings.HasPrefix(strings.TrimSpace(got), c.want) {
			t.Errorf("Format(%#08x) = %q, want prefix %q", c.word, got, c.want)
		}
	}
}

func TestFormatUnrecognizedFallsBackToWord(t *testing.T) {
	got := Format(decode.Decode(0xFC000000))
	if !strings.HasPrefix(got, ".word") {
		t.Errorf("Format(unrecognized) = %q, want .word fallback", got)
	}
}
