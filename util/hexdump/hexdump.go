/*
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package hexdump renders a byte slice as fixed-width offset/hex/ASCII rows
// for the console's memory-inspection command.
package hexdump

import "strings"

var hexMap = "0123456789ABCDEF"

func formatByte(str *strings.Builder, b byte) {
	str.WriteByte(hexMap[(b>>4)&0xf])
	str.WriteByte(hexMap[b&0xf])
}

func formatWord(str *strings.Builder, w uint32) {
	shift := 28
	for range 8 {
		str.WriteByte(hexMap[(w>>shift)&0xf])
		shift -= 4
	}
}

// Format renders data as 16-byte rows: a base-relative offset, the hex
// bytes, and a printable-ASCII column.
func Format(base uint32, data []byte) string {
	var out strings.Builder
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[off:end]

		formatWord(&out, base+uint32(off))
		out.WriteString("  ")
		for i := 0; i < 16; i++ {
			if i < len(row) {
				formatByte(&out, row[i])
			} else {
				out.WriteString("  ")
			}
			out.WriteByte(' ')
		}
		out.WriteString(" |")
		for _, b := range row {
			if b >= 0x20 && b < 0x7f {
				out.WriteByte(b)
			} else {
				out.WriteByte('.')
			}
		}
		out.WriteString("|\n")
	}
	return out.String()
}
