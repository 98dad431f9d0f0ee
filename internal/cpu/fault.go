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

import "fmt"

// UnhandledOpcode is raised when the decoded instruction has no recognized
// execution handler.
type UnhandledOpcode struct {
	Primary   uint32
	Secondary uint32
	CopOp     uint32
	Raw       uint32
}

func (e *UnhandledOpcode) Error() string {
	return fmt.Sprintf("unhandled opcode: primary=%#02x secondary=%#02x cop_op=%#02x raw=%#08x",
		e.Primary, e.Secondary, e.CopOp, e.Raw)
}

// ArithmeticOverflow is raised by ADD/ADDI when the checked addition
// overflows 32-bit signed range.
type ArithmeticOverflow struct {
	Op string
}

func (e *ArithmeticOverflow) Error() string {
	return fmt.Sprintf("arithmetic overflow in %s", e.Op)
}

// UnhandledCop0Register is raised by MFC0/MTC0 against a register index
// this core does not recognize, or a read of a write-only register.
type UnhandledCop0Register struct {
	Index uint32
	Op    string
}

func (e *UnhandledCop0Register) Error() string {
	return fmt.Sprintf("unhandled COP0 register %d in %s", e.Index, e.Op)
}
