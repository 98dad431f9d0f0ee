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

import "encoding/binary"

// RamSize is the size of main RAM in bytes (2MiB).
const RamSize = 0x200000

// Ram is the mutable, zero-initialized main memory store.
type Ram struct {
	data []byte
}

// NewRam allocates a zero-filled RAM image.
func NewRam() *Ram {
	return &Ram{data: make([]byte, RamSize)}
}

func (r *Ram) Load32(off uint32) uint32 {
	return binary.LittleEndian.Uint32(r.data[off : off+4])
}

func (r *Ram) Load16(off uint32) uint16 {
	return binary.LittleEndian.Uint16(r.data[off : off+2])
}

func (r *Ram) Load8(off uint32) uint8 {
	return r.data[off]
}

func (r *Ram) Store32(off uint32, v uint32) {
	binary.LittleEndian.PutUint32(r.data[off:off+4], v)
}

func (r *Ram) Store16(off uint32, v uint16) {
	binary.LittleEndian.PutUint16(r.data[off:off+2], v)
}

func (r *Ram) Store8(off uint32, v uint8) {
	r.data[off] = v
}
