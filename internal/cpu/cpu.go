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

// Package cpu implements the MIPS R3000A-compatible instruction interpreter:
// register read/write discipline with one-slot load delay, the
// branch-delay-slot pipeline register, checked signed arithmetic, cache
// isolation, and the COP0 system-control subset the BIOS depends on.
package cpu

import (
	"github.com/r3000core/psxcore/internal/bus"
	"github.com/r3000core/psxcore/internal/decode"
	"github.com/r3000core/psxcore/internal/memory"
)

const resetVector uint32 = 0xBFC00000

// loadDelay records a pending register write scheduled by a load or MFC0,
// to be retired into writeRegs at the start of the following step.
type loadDelay struct {
	index uint32
	value uint32
}

// CPU holds the full architectural state of the interpreter: two register
// files (read-facing and write-facing, swapped at commit), the
// branch-delay pipeline register, the pending load-delay slot, and the
// COP0 status word.
type CPU struct {
	readRegs  [32]uint32
	writeRegs [32]uint32

	pc     uint32
	prevPC uint32

	nextInstruction decode.Instruction
	load            loadDelay

	cop0Status uint32

	hi, lo uint32

	stepCount uint64

	bus *bus.Bus

	trace func(TraceEvent)
}

// TraceEvent is delivered to an optional observer registered via SetTrace
// after a successful step. It never influences architectural state; it
// exists purely for the console and disassembler views.
type TraceEvent struct {
	PC          uint32
	Instruction decode.Instruction
	StepCount   uint64
}

// New constructs a CPU over bios, owning a freshly allocated bus and RAM,
// and resets it to the BIOS entry vector.
func New(bios *memory.Bios) *CPU {
	c := &CPU{bus: bus.New(bios)}
	c.Reset()
	return c
}

// NewFromBios is an alias of New kept for callers that load the BIOS image
// themselves and want the constructor name to say so explicitly.
func NewFromBios(bios *memory.Bios) *CPU {
	return New(bios)
}

// SetTrace registers fn to be called after each successful Step. Passing
// nil disables tracing.
func (c *CPU) SetTrace(fn func(TraceEvent)) {
	c.trace = fn
}

// Reset restores the CPU to its power-on state: zeroed registers, zeroed
// COP0 status, the word at the BIOS entry vector primed into the
// branch-delay pipeline register, and the PC one word past the entry
// vector, so the first Step executes the instruction at the reset vector.
//
// Priming performs exactly the fetch-and-advance half of the step
// algorithm once, without an execute or commit: it loads the word at the
// reset vector into next_instruction and advances pc past it, mirroring
// what the final instruction of a prior run would have left behind. Step
// always executes the next_instruction left over from before it runs, so
// without this the first real Step call would re-fetch the reset vector
// instead of advancing to the instruction after it.
func (c *CPU) Reset() {
	c.readRegs = [32]uint32{}
	c.writeRegs = [32]uint32{}
	c.pc = resetVector
	c.prevPC = resetVector
	c.cop0Status = 0
	c.hi, c.lo = 0, 0
	c.load = loadDelay{}
	c.stepCount = 0
	c.primeFetch()
}

func (c *CPU) primeFetch() {
	word, err := c.bus.Load32(c.pc)
	if err != nil {
		// An unreadable reset vector is a configuration error the
		// driver should have caught at BIOS-load time; fetch as zero
		// (decodes as SLL r0, r0, 0, a no-op) rather than panic.
		word = 0
	}
	c.nextInstruction = decode.Decode(word)
	c.prevPC = c.pc
	c.pc += 4
}

// Step executes exactly one instruction: fetch, PC bump, load-delay
// retire, execute, commit. The pending load is retired into writeRegs
// before execute, so the executing instruction still reads the old value
// through readRegs, and its own write to the same register wins at commit.
func (c *CPU) Step() error {
	fetched, ferr := c.bus.Load32(c.pc)
	instruction := c.nextInstruction
	c.nextInstruction = decode.Decode(fetched)

	c.prevPC = c.pc
	c.pc += 4

	c.retireLoadDelay()

	if ferr != nil {
		return ferr
	}

	if err := c.execute(instruction); err != nil {
		return err
	}

	c.readRegs = c.writeRegs
	c.stepCount++

	if c.trace != nil {
		c.trace(TraceEvent{PC: c.prevPC, Instruction: instruction, StepCount: c.stepCount})
	}
	return nil
}

func (c *CPU) retireLoadDelay() {
	if c.load.index != 0 {
		c.writeRegs[c.load.index] = c.load.value
	}
	c.writeRegs[0] = 0
	c.load = loadDelay{}
}

// setReg writes v into write_regs[i], discarding writes to register 0.
func (c *CPU) setReg(i uint32, v uint32) {
	if i == 0 {
		return
	}
	c.writeRegs[i] = v
	c.writeRegs[0] = 0
}

// scheduleLoad records a load-delay write to be retired at the start of
// the next step. A scheduled load to register 0 is a documented no-op.
func (c *CPU) scheduleLoad(i uint32, v uint32) {
	c.load = loadDelay{index: i, value: v}
}

// branch implements the MIPS branch-target encoding: pc has already been
// incremented past the branch instruction itself by the time this runs, so
// the -4 compensates for that.
func (c *CPU) branch(offset16SE int32) {
	c.pc = uint32(int32(c.pc) + (offset16SE << 2) - 4)
}

// PC returns the address of the next instruction to fetch.
func (c *CPU) PC() uint32 { return c.pc }

// PrevPC returns the address fetched by the most recently completed step.
func (c *CPU) PrevPC() uint32 { return c.prevPC }

// StepCount returns the number of successfully completed steps.
func (c *CPU) StepCount() uint64 { return c.stepCount }

// Register returns the architectural value of read_regs[i]. Index 31 is
// always in range; indices outside [0,31] are a caller bug and panic like
// any other out-of-bounds slice access would.
func (c *CPU) Register(i int) uint32 { return c.readRegs[i] }

// Hi and Lo are reserved for MULT/DIV results. This core does not
// implement either instruction, so they always read 0; the accessors exist
// for the debugger's register display.
func (c *CPU) Hi() uint32 { return c.hi }
func (c *CPU) Lo() uint32 { return c.lo }

// Cop0Status returns the COP0 Status register (register 12).
func (c *CPU) Cop0Status() uint32 { return c.cop0Status }

// LoadForDebug32 exposes the same read contract as the bus's Load32, for
// the disassembler and console memory views. It does not honor cache
// isolation: that gate applies only to CPU-issued data accesses.
func (c *CPU) LoadForDebug32(addr uint32) (uint32, error) {
	return c.bus.LoadForDebug32(addr)
}

func (c *CPU) cacheIsolated() bool {
	return (c.cop0Status>>16)&1 != 0
}
