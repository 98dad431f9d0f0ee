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

package main

import (
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/r3000core/psxcore/config"
	"github.com/r3000core/psxcore/console"
	"github.com/r3000core/psxcore/internal/cpu"
	"github.com/r3000core/psxcore/internal/memory"
	"github.com/r3000core/psxcore/util/logger"
)

func main() {
	optBios := getopt.StringLong("bios", 'b', "", "BIOS image path")
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	cfg := config.Config{}
	if *optConfig != "" {
		loaded, err := config.Load(*optConfig)
		if err != nil {
			slog.Error("loading configuration", "path", *optConfig, "err", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if args := getopt.Args(); len(args) > 0 {
		cfg.BiosPath = args[0]
	}
	if *optBios != "" {
		cfg.BiosPath = *optBios
	}
	if *optLogFile != "" {
		cfg.LogPath = *optLogFile
	}
	if cfg.BiosPath == "" {
		slog.Error("no BIOS path given; pass it as an argument, pass --bios, or set bios= in the config file")
		os.Exit(1)
	}

	var file *os.File
	if cfg.LogPath != "" {
		f, err := os.Create(cfg.LogPath)
		if err != nil {
			slog.Error("creating log file", "path", cfg.LogPath, "err", err)
			os.Exit(1)
		}
		file = f
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	handler := logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, cfg.Debug)
	log := slog.New(handler)
	slog.SetDefault(log)

	log.Info("psxcore started", "bios", cfg.BiosPath)

	bios, err := memory.LoadBiosFile(cfg.BiosPath)
	if err != nil {
		log.Error("loading BIOS image", "err", err)
		os.Exit(1)
	}

	c := cpu.New(bios)
	console.Run(c)

	log.Info("psxcore exiting", "steps", c.StepCount())
}
