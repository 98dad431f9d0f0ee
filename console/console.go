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

// Package console is the interactive front end driving a cpu.CPU one step
// at a time, for inspecting architectural state between steps and
// recovering from a fault without restarting the process.
package console

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/r3000core/psxcore/internal/cpu"
	"github.com/r3000core/psxcore/internal/decode"
	"github.com/r3000core/psxcore/internal/disasm"
	"github.com/r3000core/psxcore/util/hexdump"
)

var commands = []string{"step", "run", "regs", "mem", "disasm", "reset", "quit", "help"}

// Run drives c from an interactive liner prompt until the user quits or
// aborts (Ctrl-D / Ctrl-C).
func Run(c *cpu.CPU) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var out []string
		for _, cmd := range commands {
			if strings.HasPrefix(cmd, partial) {
				out = append(out, cmd)
			}
		}
		return out
	})

	for {
		input, err := line.Prompt("psxcore> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			slog.Error("error reading line", "err", err)
			return
		}
		line.AppendHistory(input)
		if quit := dispatch(c, input); quit {
			return
		}
	}
}

func dispatch(c *cpu.CPU, input string) (quit bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "quit", "exit":
		return true
	case "help":
		printHelp()
	case "step":
		n := 1
		if len(fields) > 1 {
			if v, err := strconv.Atoi(fields[1]); err == nil {
				n = v
			}
		}
		runSteps(c, n)
	case "run":
		runUntilFault(c)
	case "reset":
		c.Reset()
		fmt.Println("reset to", formatAddr(c.PC()))
	case "regs":
		printRegisters(c)
	case "mem":
		printMem(c, fields[1:])
	case "disasm":
		printDisasm(c, fields[1:])
	default:
		fmt.Println("unrecognized command:", fields[0])
	}
	return false
}

func runSteps(c *cpu.CPU, n int) {
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			reportFault(c, err)
			return
		}
	}
}

func runUntilFault(c *cpu.CPU) {
	for {
		if err := c.Step(); err != nil {
			reportFault(c, err)
			return
		}
	}
}

func reportFault(c *cpu.CPU, err error) {
	fmt.Printf("fault (prev_pc=%s): %v\n", formatAddr(c.PrevPC()), err)
	fmt.Println("type 'reset' to restart, or 'quit' to exit")
}

func printHelp() {
	fmt.Println("commands: step [n], run, regs, mem <addr> [len], disasm <addr> [n], reset, quit")
}

func printRegisters(c *cpu.CPU) {
	for i := 0; i < 32; i += 4 {
		fmt.Printf("r%-2d=%s r%-2d=%s r%-2d=%s r%-2d=%s\n",
			i, formatAddr(c.Register(i)),
			i+1, formatAddr(c.Register(i+1)),
			i+2, formatAddr(c.Register(i+2)),
			i+3, formatAddr(c.Register(i+3)))
	}
	fmt.Printf("pc=%s prev_pc=%s status=%s steps=%d\n",
		formatAddr(c.PC()), formatAddr(c.PrevPC()), formatAddr(c.Cop0Status()), c.StepCount())
}

func printMem(c *cpu.CPU, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: mem <addr> [len]")
		return
	}
	addr, err := parseHex(args[0])
	if err != nil {
		fmt.Println("bad address:", err)
		return
	}
	length := 64
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil {
			length = v
		}
	}
	data := make([]byte, 0, length)
	for off := 0; off < length; off += 4 {
		word, err := c.LoadForDebug32(addr + uint32(off))
		if err != nil {
			fmt.Println("fault reading memory:", err)
			break
		}
		data = append(data, byte(word), byte(word>>8), byte(word>>16), byte(word>>24))
	}
	fmt.Print(hexdump.Format(addr, data))
}

func printDisasm(c *cpu.CPU, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: disasm <addr> [n]")
		return
	}
	addr, err := parseHex(args[0])
	if err != nil {
		fmt.Println("bad address:", err)
		return
	}
	n := 10
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil {
			n = v
		}
	}
	for i := 0; i < n; i++ {
		word, err := c.LoadForDebug32(addr)
		if err != nil {
			fmt.Println("fault reading memory:", err)
			return
		}
		fmt.Printf("%s  %s\n", formatAddr(addr), disasm.Format(decode.Decode(word)))
		addr += 4
	}
}

func formatAddr(v uint32) string {
	return fmt.Sprintf("%#08x", v)
}

func parseHex(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	return uint32(v), err
}
