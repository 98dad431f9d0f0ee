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
package bus

import "fmt"

// UnalignedAccess is raised when a 16/32-bit access targets an address that
// is not naturally aligned for its width.
type UnalignedAccess struct {
	Addr  uint32
	Width int
}

func (e *UnalignedAccess) Error() string {
	return fmt.Sprintf("unaligned %d-bit access at %#08x", e.Width, e.Addr)
}

// UnmappedAccess is raised when an address falls outside every recognized
// region, or the region does not accept the attempted operation/width.
type UnmappedAccess struct {
	Addr uint32
	Op   string
}

func (e *UnmappedAccess) Error() string {
	return fmt.Sprintf("unmapped %s at %#08x", e.Op, e.Addr)
}

// WriteToReadOnly is raised when a store targets the BIOS region.
type WriteToReadOnly struct {
	Addr uint32
}

func (e *WriteToReadOnly) Error() string {
	return fmt.Sprintf("write to read-only BIOS at %#08x", e.Addr)
}

// UnsupportedRemap is raised when a MemoryControl base-register write
// carries a value other than the one fixed expansion base the BIOS expects.
type UnsupportedRemap struct {
	Addr  uint32
	Value uint32
}

func (e *UnsupportedRemap) Error() string {
	return fmt.Sprintf("unsupported expansion remap at %#08x: %#08x", e.Addr, e.Value)
}
