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

// Package bus routes typed loads and stores from the CPU to the BIOS store,
// RAM store, or a named memory-mapped stub, after masking the address's
// KSEG mirror bits and checking alignment.
package bus

import (
	"log/slog"

	"github.com/r3000core/psxcore/internal/memory"
	"github.com/r3000core/psxcore/internal/region"
)

// Bus owns the two real backing stores and routes every CPU access through
// the address decoder before dispatching to a store or a logged no-op stub.
type Bus struct {
	bios   *memory.Bios
	ram    *memory.Ram
	logger *slog.Logger
}

// New creates a bus over the given BIOS image, allocating a fresh zeroed RAM.
func New(bios *memory.Bios) *Bus {
	return &Bus{
		bios:   bios,
		ram:    memory.NewRam(),
		logger: slog.Default(),
	}
}

// SetLogger overrides the logger used for MMIO no-op tracing.
func (b *Bus) SetLogger(l *slog.Logger) {
	if l != nil {
		b.logger = l
	}
}

func (b *Bus) logNoop(op string, addr uint32, width int) {
	b.logger.Debug("mmio no-op", "op", op, "addr", addr, "width", width)
}

// Load32 reads a little-endian word, masking mirrors and checking alignment
// and region permissions first.
func (b *Bus) Load32(addr uint32) (uint32, error) {
	phys := region.Mask(addr)
	if phys&3 != 0 {
		return 0, &UnalignedAccess{Addr: addr, Width: 32}
	}
	info, ok := region.Of(phys)
	if !ok {
		return 0, &UnmappedAccess{Addr: addr, Op: "load32"}
	}
	switch info.Name {
	case region.RAM:
		return b.ram.Load32(phys - info.Base), nil
	case region.Bios:
		return b.bios.Load32(phys - info.Base), nil
	default:
		return 0, &UnmappedAccess{Addr: addr, Op: "load32"}
	}
}

// LoadForDebug32 is a read-only observer with the same contract as Load32,
// used by disassembler/console views. It never participates in the CPU's
// cache-isolation gate, since it is not a CPU data access.
func (b *Bus) LoadForDebug32(addr uint32) (uint32, error) {
	return b.Load32(addr)
}

// Load16 reads a little-endian halfword. Only RAM accepts 16-bit reads.
func (b *Bus) Load16(addr uint32) (uint16, error) {
	phys := region.Mask(addr)
	if phys&1 != 0 {
		return 0, &UnalignedAccess{Addr: addr, Width: 16}
	}
	info, ok := region.Of(phys)
	if !ok || info.Name != region.RAM {
		return 0, &UnmappedAccess{Addr: addr, Op: "load16"}
	}
	return b.ram.Load16(phys - info.Base), nil
}

// Load8 reads a byte. RAM and BIOS accept 8-bit reads; nothing else does.
func (b *Bus) Load8(addr uint32) (uint8, error) {
	phys := region.Mask(addr)
	info, ok := region.Of(phys)
	if !ok {
		return 0, &UnmappedAccess{Addr: addr, Op: "load8"}
	}
	switch info.Name {
	case region.RAM:
		return b.ram.Load8(phys - info.Base), nil
	case region.Bios:
		return b.bios.Load8(phys - info.Base), nil
	default:
		return 0, &UnmappedAccess{Addr: addr, Op: "load8"}
	}
}

// Store32 writes a little-endian word. RAM is real storage; BIOS always
// faults; MemoryControl, RamSize, SpuControl, and CacheControl accept it as
// a logged no-op (MemoryControl's two base registers are also value-checked).
func (b *Bus) Store32(addr uint32, v uint32) error {
	phys := region.Mask(addr)
	if phys&3 != 0 {
		return &UnalignedAccess{Addr: addr, Width: 32}
	}
	info, ok := region.Of(phys)
	if !ok {
		return &UnmappedAccess{Addr: addr, Op: "store32"}
	}
	off := phys - info.Base
	switch info.Name {
	case region.RAM:
		b.ram.Store32(off, v)
		return nil
	case region.Bios:
		return &WriteToReadOnly{Addr: addr}
	case region.MemoryControl:
		switch off {
		case 0:
			if v != 0x1F000000 {
				return &UnsupportedRemap{Addr: addr, Value: v}
			}
		case 4:
			if v != 0x1F802000 {
				return &UnsupportedRemap{Addr: addr, Value: v}
			}
		}
		b.logNoop("store32", addr, 32)
		return nil
	case region.RamSize, region.CacheControl:
		b.logNoop("store32", addr, 32)
		return nil
	case region.SpuControl:
		b.logNoop("store32", addr, 32)
		return nil
	default:
		return &UnmappedAccess{Addr: addr, Op: "store32"}
	}
}

// Store16 writes a little-endian halfword. RAM is real storage; SpuControl
// accepts it as a logged no-op; nothing else does.
func (b *Bus) Store16(addr uint32, v uint16) error {
	phys := region.Mask(addr)
	if phys&1 != 0 {
		return &UnalignedAccess{Addr: addr, Width: 16}
	}
	info, ok := region.Of(phys)
	if !ok {
		return &UnmappedAccess{Addr: addr, Op: "store16"}
	}
	switch info.Name {
	case region.RAM:
		b.ram.Store16(phys-info.Base, v)
		return nil
	case region.SpuControl:
		b.logNoop("store16", addr, 16)
		return nil
	default:
		return &UnmappedAccess{Addr: addr, Op: "store16"}
	}
}

// Store8 writes a byte. RAM is real storage; ExpansionRegion2IntDipPost
// accepts it as a logged no-op; nothing else does (widths other than 8-bit
// to that region are unmapped, not no-ops — see ambiguous-behavior notes).
func (b *Bus) Store8(addr uint32, v uint8) error {
	phys := region.Mask(addr)
	info, ok := region.Of(phys)
	if !ok {
		return &UnmappedAccess{Addr: addr, Op: "store8"}
	}
	switch info.Name {
	case region.RAM:
		b.ram.Store8(phys-info.Base, v)
		return nil
	case region.ExpansionRegion2IntDipPost:
		b.logNoop("store8", addr, 8)
		return nil
	default:
		return &UnmappedAccess{Addr: addr, Op: "store8"}
	}
}
