package config

import (
	"strings"
	"testing"
)

func TestParseAppliesDirectives(t *testing.T) {
	in := "# a comment\nbios = /roms/scph1001.bin\nlog=/tmp/psx.log\ndebug = true\n"
	cfg, err := parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.BiosPath != "/roms/scph1001.bin" {
		t.Errorf("BiosPath = %q", cfg.BiosPath)
	}
	if cfg.LogPath != "/tmp/psx.log" {
		t.Errorf("LogPath = %q", cfg.LogPath)
	}
	if !cfg.Debug {
		t.Errorf("Debug = false, want true")
	}
}

func TestParseIgnoresBlankAndCommentLines(t *testing.T) {
	in := "\n   \n# nothing here\nbios = x\n"
	cfg, err := parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.BiosPath != "x" {
		t.Errorf("BiosPath = %q, want x", cfg.BiosPath)
	}
}

func TestParseRejectsUnknownKey(t *testing.T) {
	_, err := parse(strings.NewReader("frobnicate = yes\n"))
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("expected *ParseError, got %T", err)
	}
}

func TestParseRejectsMissingEquals(t *testing.T) {
	_, err := parse(strings.NewReader("bios /roms/x.bin\n"))
	if err == nil {
		t.Fatalf("expected error for missing '='")
	}
}

func TestParseRejectsBadBool(t *testing.T) {
	_, err := parse(strings.NewReader("debug = maybe\n"))
	if err == nil {
		t.Fatalf("expected error for non-boolean debug value")
	}
}
