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

// Package region strips the KSEG mirror bits from a CPU-visible address and
// classifies the resulting physical address into one of the machine's
// recognized memory-mapped regions.
package region

// Name identifies one of the fixed set of recognized physical regions.
type Name int

const (
	RAM Name = iota
	Expansion1
	MemoryControl
	RamSize
	SpuControl
	ExpansionRegion2IntDipPost
	Bios
	CacheControl
)

func (n Name) String() string {
	switch n {
	case RAM:
		return "RAM"
	case Expansion1:
		return "Expansion1"
	case MemoryControl:
		return "MemoryControl"
	case RamSize:
		return "RamSize"
	case SpuControl:
		return "SpuControl"
	case ExpansionRegion2IntDipPost:
		return "ExpansionRegion2IntDipPost"
	case Bios:
		return "Bios"
	case CacheControl:
		return "CacheControl"
	default:
		return "Unknown"
	}
}

// Info describes the base and size of a region in post-mask physical space.
type Info struct {
	Name Name
	Base uint32
	Size uint32
}

// table lists every recognized region. Entries must not overlap.
var table = [...]Info{
	{RAM, 0x00000000, 0x200000},
	{Expansion1, 0x1F000000, 0xB0},
	{MemoryControl, 0x1F801000, 0x24},
	{RamSize, 0x1F801060, 0x4},
	{SpuControl, 0x1F801D80, 0x40},
	{ExpansionRegion2IntDipPost, 0x1F802000, 0x71},
	{Bios, 0x1FC00000, 0x80000},
	{CacheControl, 0xFFFE0130, 0x4},
}

// Mask strips the KSEG mirror bits from a CPU-visible address, returning the
// physical address per the four segment masks (KUSEG, KSEG0, KSEG1, KSEG2).
func Mask(addr uint32) uint32 {
	switch addr >> 29 {
	case 4: // KSEG0
		return addr & 0x7FFFFFFF
	case 5: // KSEG1
		return addr & 0x1FFFFFFF
	default: // KUSEG (0-3) and KSEG2 (6-7): no masking
		return addr
	}
}

// Of classifies a post-mask physical address into a recognized region.
func Of(phys uint32) (Info, bool) {
	for _, r := range table {
		if phys >= r.Base && phys < r.Base+r.Size {
			return r, true
		}
	}
	return Info{}, false
}
