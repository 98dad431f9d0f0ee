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

// Package decode turns a raw 32-bit MIPS R3000A instruction word into an
// Instruction exposing its named fields. Decoding never touches memory and
// never fails: unrecognized encodings simply carry their raw word forward
// for the CPU to reject as an unhandled opcode.
package decode

// Instruction holds every field a MIPS-I word can carry. Not every field is
// meaningful for every opcode; callers read only the fields their opcode
// defines.
type Instruction struct {
	Raw       uint32
	Primary   uint32
	Rs        uint32
	Rt        uint32
	Rd        uint32
	Shamt     uint32
	Secondary uint32
	Imm16     uint16
	Imm26     uint32
	CopNum    uint32
	CopFlag   bool
	CopOp     uint32
}

// Decode splits a raw instruction word into its fields. It is a pure, total
// function: every 32-bit input produces a valid Instruction.
func Decode(word uint32) Instruction {
	i := Instruction{
		Raw:       word,
		Primary:   (word >> 26) & 0x3F,
		Rs:        (word >> 21) & 0x1F,
		Rt:        (word >> 16) & 0x1F,
		Rd:        (word >> 11) & 0x1F,
		Shamt:     (word >> 6) & 0x1F,
		Secondary: word & 0x3F,
		Imm16:     uint16(word & 0xFFFF),
		Imm26:     word & 0x3FFFFFF,
		CopNum:    (word >> 26) & 0x3,
		CopFlag:   (word>>25)&1 != 0,
	}
	if i.CopFlag {
		i.CopOp = word & 0x3F
	} else {
		i.CopOp = (word >> 21) & 0x1F
	}
	return i
}

// Imm16SE sign-extends Imm16 to 32 bits, for instructions that treat the
// immediate as a signed offset or addend.
func (i Instruction) Imm16SE() int32 {
	return int32(int16(i.Imm16))
}
