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
	cop0SubMFC0 = 0x00
	cop0SubMTC0 = 0x04
)

const cop0RegStatus = 12
const cop0RegCause = 13

// debugRegs are COP0 registers this core recognizes enough to accept a
// no-op write, but does not back with real storage: reads fault.
var debugRegs = map[uint32]bool{3: true, 5: true, 6: true, 7: true, 9: true, 11: true}

// executeCop0 dispatches MFC0/MTC0 by their coprocessor sub-encoding.
// Recognized registers are 3, 5, 6, 7, 9, 11 (write-ignored, read-faults),
// 12 (Status, read/write), and 13 (CAUSE, write-ignored).
func (c *CPU) executeCop0(i decode.Instruction) error {
	switch i.CopOp {
	case cop0SubMFC0:
		return c.mfc0(i)
	case cop0SubMTC0:
		return c.mtc0(i)
	default:
		return &UnhandledOpcode{Primary: i.Primary, CopOp: i.CopOp, Raw: i.Raw}
	}
}

func (c *CPU) mfc0(i decode.Instruction) error {
	switch i.Rd {
	case cop0RegStatus:
		c.scheduleLoad(i.Rt, c.cop0Status)
		return nil
	default:
		return &UnhandledCop0Register{Index: i.Rd, Op: "MFC0"}
	}
}

func (c *CPU) mtc0(i decode.Instruction) error {
	switch {
	case i.Rd == cop0RegStatus:
		c.cop0Status = c.readRegs[i.Rt]
		return nil
	case i.Rd == cop0RegCause:
		return nil
	case debugRegs[i.Rd]:
		return nil
	default:
		return &UnhandledCop0Register{Index: i.Rd, Op: "MTC0"}
	}
}
