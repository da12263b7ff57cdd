// Package config loads the ambient trace/VM-limit settings from an
// optional TOML file, grounded on the teacher's struct-of-structs
// config.Config (config/config.go).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config controls the observational collaborators (disassembly, lex
// dump, color) and the VM's optional resource limits. None of it
// changes compile or execution semantics (spec.md §6).
type Config struct {
	Trace struct {
		EnableDisassembly bool `toml:"enable_disassembly"`
		EnableLexDump     bool `toml:"enable_lex_dump"`
		Color             bool `toml:"color"`
	} `toml:"trace"`

	VM struct {
		MaxStack int `toml:"max_stack"`
		MaxSteps int `toml:"max_steps"`
	} `toml:"vm"`

	Debugger struct {
		HistorySize int `toml:"history_size"`
	} `toml:"debugger"`
}

// Default returns the zero-friendly defaults: tracing off, unlimited
// VM, a modest command history.
func Default() *Config {
	cfg := &Config{}
	cfg.Trace.EnableDisassembly = false
	cfg.Trace.EnableLexDump = false
	cfg.Trace.Color = true
	cfg.VM.MaxStack = 0
	cfg.VM.MaxSteps = 0
	cfg.Debugger.HistorySize = 1000
	return cfg
}

// Load reads and decodes a TOML file at path. A missing file is not
// an error — it returns Default() unchanged, matching the teacher's
// tolerant CLI flag defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
