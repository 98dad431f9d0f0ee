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

// Package disasm renders a decoded instruction as a MIPS mnemonic and
// operand string, for the console and debugger views. It never drives
// execution and never fails: unrecognized encodings render as a raw word.
package disasm

import (
	"fmt"

	"github.com/r3000core/psxcore/internal/decode"
)

type formatter func(decode.Instruction) string

var opMap = map[uint32]formatter{
	0x02: func(i decode.Instruction) string { return fmt.Sprintf("j      %#07x", i.Imm26<<2) },
	0x03: func(i decode.Instruction) string { return fmt.Sprintf("jal    %#07x", i.Imm26<<2) },
	0x04: func(i decode.Instruction) string { return rtTarget("beq", i) },
	0x05: func(i decode.Instruction) string { return rtTarget("bne", i) },
	0x08: func(i decode.Instruction) string { return iArith("addi", i) },
	0x09: func(i decode.Instruction) string { return iArith("addiu", i) },
	0x0C: func(i decode.Instruction) string { return iLogical("andi", i) },
	0x0D: func(i decode.Instruction) string { return iLogical("ori", i) },
	0x0F: func(i decode.Instruction) string { return fmt.Sprintf("lui    r%d, %#04x", i.Rt, i.Imm16) },
	0x10: formatCop0,
	0x20: func(i decode.Instruction) string { return memOp("lb", i) },
	0x23: func(i decode.Instruction) string { return memOp("lw", i) },
	0x28: func(i decode.Instruction) string { return memOp("sb", i) },
	0x29: func(i decode.Instruction) string { return memOp("sh", i) },
	0x2B: func(i decode.Instruction) string { return memOp("sw", i) },
}

var specialMap = map[uint32]formatter{
	0x00: func(i decode.Instruction) string { return fmt.Sprintf("sll    r%d, r%d, %d", i.Rd, i.Rt, i.Shamt) },
	0x08: func(i decode.Instruction) string { return fmt.Sprintf("jr     r%d", i.Rs) },
	0x20: func(i decode.Instruction) string { return rFormatStr("add", i) },
	0x21: func(i decode.Instruction) string { return rFormatStr("addu", i) },
	0x24: func(i decode.Instruction) string { return rFormatStr("and", i) },
	0x25: func(i decode.Instruction) string { return rFormatStr("or", i) },
	0x2B: func(i decode.Instruction) string { return rFormatStr("sltu", i) },
}

func rFormatStr(mnemonic string, i decode.Instruction) string {
	return fmt.Sprintf("%-6s r%d, r%d, r%d", mnemonic, i.Rd, i.Rs, i.Rt)
}

func rtTarget(mnemonic string, i decode.Instruction) string {
	return fmt.Sprintf("%-6s r%d, r%d, %d", mnemonic, i.Rs, i.Rt, i.Imm16SE())
}

func iArith(mnemonic string, i decode.Instruction) string {
	return fmt.Sprintf("%-6s r%d, r%d, %d", mnemonic, i.Rt, i.Rs, i.Imm16SE())
}

func iLogical(mnemonic string, i decode.Instruction) string {
	return fmt.Sprintf("%-6s r%d, r%d, %#04x", mnemonic, i.Rt, i.Rs, i.Imm16)
}

func memOp(mnemonic string, i decode.Instruction) string {
	return fmt.Sprintf("%-6s r%d, %d(r%d)", mnemonic, i.Rt, i.Imm16SE(), i.Rs)
}

func formatCop0(i decode.Instruction) string {
	switch i.CopOp {
	case 0x00:
		return fmt.Sprintf("mfc0   r%d, $%d", i.Rt, i.Rd)
	case 0x04:
		return fmt.Sprintf("mtc0   r%d, $%d", i.Rt, i.Rd)
	default:
		return fmt.Sprintf("cop0   %#08x", i.Raw)
	}
}

// Format renders ins as a mnemonic and its operands. Encodings this core
// does not execute still render something readable, distinct from the
// faulting behavior of the CPU's own dispatch.
func Format(ins decode.Instruction) string {
	if ins.Primary == 0x00 {
		if f, ok := specialMap[ins.Secondary]; ok {
			return f(ins)
		}
		return fmt.Sprintf(".word  %#08x", ins.Raw)
	}
	if f, ok := opMap[ins.Primary]; ok {
		return f(ins)
	}
	return fmt.Sprintf(".word  %#08x", ins.Raw)
}
