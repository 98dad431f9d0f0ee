// Package memory implements the two byte-addressable backing stores the
// bus routes loads and stores to: the read-only BIOS image and main RAM.
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
package memory

import (
	"encoding/binary"
	"fmt"
	"os"
)

// BiosSize is the exact size of a PlayStation BIOS ROM image.
const BiosSize = 0x80000

// IoError reports a failure loading the BIOS image from disk.
type IoError struct {
	Path  string
	Cause error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("bios: unable to load %q: %v", e.Path, e.Cause)
}

func (e *IoError) Unwrap() error { return e.Cause }

// Bios is the immutable 512KiB firmware image mapped at 0x1FC00000.
type Bios struct {
	data []byte
}

// NewBios wraps a byte slice that must be exactly BiosSize long.
func NewBios(data []byte) (*Bios, error) {
	if len(data) != BiosSize {
		return nil, fmt.Errorf("bios: image is %d bytes, want %d", len(data), BiosSize)
	}
	return &Bios{data: data}, nil
}

// LoadBiosFile reads a BIOS image from disk and wraps it.
func LoadBiosFile(path string) (*Bios, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &IoError{Path: path, Cause: err}
	}
	bios, err := NewBios(raw)
	if err != nil {
		return nil, &IoError{Path: path, Cause: err}
	}
	return bios, nil
}

// Load32 reads a little-endian word at the given in-image offset.
func (b *Bios) Load32(off uint32) uint32 {
	return binary.LittleEndian.Uint32(b.data[off : off+4])
}

// Load8 reads a byte at the given in-image offset.
func (b *Bios) Load8(off uint32) uint8 {
	return b.data[off]
}
