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

package cpu

import "github.com/r3000core/psxcore/internal/decode"

const (
	opSpecial = 0x00
	opJ       = 0x02
	opJAL     = 0x03
	opBEQ     = 0x04
	opBNE     = 0x05
	opADDI    = 0x08
	opADDIU   = 0x09
	opANDI    = 0x0C
	opORI     = 0x0D
	opLUI     = 0x0F
	opCOP0    = 0x10
	opLB      = 0x20
	opLW      = 0x23
	opSB      = 0x28
	opSH      = 0x29
	opSW      = 0x2B
)

const (
	funSLL  = 0x00
	funJR   = 0x08
	funADD  = 0x20
	funADDU = 0x21
	funAND  = 0x24
	funOR   = 0x25
	funSLTU = 0x2B
)

// execute dispatches a decoded instruction to its handler. The dispatch is
// an exhaustive switch over the primary opcode and, for SPECIAL, the
// secondary opcode; anything outside the recognized set is
// UnhandledOpcode.
func (c *CPU) execute(i decode.Instruction) error {
	switch i.Primary {
	case opSpecial:
		return c.executeSpecial(i)
	case opJ:
		c.pc = (c.pc & 0xF0000000) | (i.Imm26 << 2)
		return nil
	case opJAL:
		c.setReg(31, c.pc)
		c.pc = (c.pc & 0xF0000000) | (i.Imm26 << 2)
		return nil
	case opBEQ:
		if c.readRegs[i.Rs] == c.readRegs[i.Rt] {
			c.branch(i.Imm16SE())
		}
		return nil
	case opBNE:
		if c.readRegs[i.Rs] != c.readRegs[i.Rt] {
			c.branch(i.Imm16SE())
		}
		return nil
	case opADDI:
		result, overflowed := addCheckedSigned(c.readRegs[i.Rs], uint32(i.Imm16SE()))
		if overflowed {
			return &ArithmeticOverflow{Op: "ADDI"}
		}
		c.setReg(i.Rt, result)
		return nil
	case opADDIU:
		c.setReg(i.Rt, c.readRegs[i.Rs]+uint32(i.Imm16SE()))
		return nil
	case opANDI:
		c.setReg(i.Rt, c.readRegs[i.Rs]&uint32(i.Imm16))
		return nil
	case opORI:
		c.setReg(i.Rt, c.readRegs[i.Rs]|uint32(i.Imm16))
		return nil
	case opLUI:
		c.setReg(i.Rt, uint32(i.Imm16)<<16)
		return nil
	case opCOP0:
		return c.executeCop0(i)
	case opLB:
		return c.executeLoad(i, 1)
	case opLW:
		return c.executeLoad(i, 4)
	case opSB:
		return c.executeStore(i, 1)
	case opSH:
		return c.executeStore(i, 2)
	case opSW:
		return c.executeStore(i, 4)
	default:
		return &UnhandledOpcode{Primary: i.Primary, Secondary: i.Secondary, CopOp: i.CopOp, Raw: i.Raw}
	}
}

func (c *CPU) executeSpecial(i decode.Instruction) error {
	switch i.Secondary {
	case funSLL:
		c.setReg(i.Rd, c.readRegs[i.Rt]<<i.Shamt)
		return nil
	case funJR:
		c.pc = c.readRegs[i.Rs]
		return nil
	case funADD:
		result, overflowed := addCheckedSigned(c.readRegs[i.Rs], c.readRegs[i.Rt])
		if overflowed {
			return &ArithmeticOverflow{Op: "ADD"}
		}
		c.setReg(i.Rd, result)
		return nil
	case funADDU:
		c.setReg(i.Rd, c.readRegs[i.Rs]+c.readRegs[i.Rt])
		return nil
	case funAND:
		c.setReg(i.Rd, c.readRegs[i.Rs]&c.readRegs[i.Rt])
		return nil
	case funOR:
		c.setReg(i.Rd, c.readRegs[i.Rs]|c.readRegs[i.Rt])
		return nil
	case funSLTU:
		if c.readRegs[i.Rs] < c.readRegs[i.Rt] {
			c.setReg(i.Rd, 1)
		} else {
			c.setReg(i.Rd, 0)
		}
		return nil
	default:
		return &UnhandledOpcode{Primary: i.Primary, Secondary: i.Secondary, Raw: i.Raw}
	}
}

func effectiveAddr(base uint32, offset int32) uint32 {
	return uint32(int32(base) + offset)
}

func (c *CPU) executeLoad(i decode.Instruction, width int) error {
	if c.cacheIsolated() {
		return nil
	}
	addr := effectiveAddr(c.readRegs[i.Rs], i.Imm16SE())
	switch width {
	case 1:
		v, err := c.bus.Load8(addr)
		if err != nil {
			return err
		}
		c.scheduleLoad(i.Rt, uint32(int32(int8(v))))
		return nil
	case 4:
		v, err := c.bus.Load32(addr)
		if err != nil {
			return err
		}
		c.scheduleLoad(i.Rt, v)
		return nil
	default:
		panic("executeLoad: unsupported width")
	}
}

func (c *CPU) executeStore(i decode.Instruction, width int) error {
	if c.cacheIsolated() {
		return nil
	}
	addr := effectiveAddr(c.readRegs[i.Rs], i.Imm16SE())
	t := c.readRegs[i.Rt]
	switch width {
	case 1:
		return c.bus.Store8(addr, uint8(t&0xFF))
	case 2:
		return c.bus.Store16(addr, uint16(t&0xFFFF))
	case 4:
		return c.bus.Store32(addr, t)
	default:
		panic("executeStore: unsupported width")
	}
}
