// Command poke compiles and runs a single expression script: either
// straight through, disassembling it first, or inside the TUI/GUI
// debugger, grounded on the teacher's main.go command-line front end.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lookbusy1344/poke/internal/bytecode"
	"github.com/lookbusy1344/poke/internal/compiler"
	"github.com/lookbusy1344/poke/internal/config"
	"github.com/lookbusy1344/poke/internal/debug"
	"github.com/lookbusy1344/poke/internal/debugsvc"
	"github.com/lookbusy1344/poke/internal/gui"
	"github.com/lookbusy1344/poke/internal/loader"
	"github.com/lookbusy1344/poke/internal/tui"
	"github.com/lookbusy1344/poke/internal/vm"
)

func main() {
	var (
		tuiMode    = flag.Bool("tui", false, "run the script inside the TUI debugger")
		guiMode    = flag.Bool("gui", false, "run the script inside the desktop chunk viewer")
		disasmOnly = flag.Bool("disasm", false, "compile and print disassembly, do not run")
		configPath = flag.String("config", "poke.toml", "path to an optional TOML config file")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stdout, "Usage: poke script")
		os.Exit(1)
	}
	path := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad config file %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	if cfg.Trace.EnableLexDump {
		src, err := loader.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", path)
			os.Exit(1)
		}
		if err := debug.DumpTokens(os.Stdout, src); err != nil {
			fmt.Fprintf(os.Stderr, "Lex error: %v\n", err)
		}
		src.Close()
	}

	src, err := loader.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", path)
		os.Exit(1)
	}
	defer src.Close()

	chunk, err := compiler.Compile(src, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compile error: %v\n", err)
		os.Exit(1)
	}

	if *disasmOnly || cfg.Trace.EnableDisassembly {
		printDisassembly(chunk, cfg.Trace.Color)
		if *disasmOnly {
			return
		}
	}

	switch {
	case *tuiMode:
		runTUI(chunk, path, cfg)
	case *guiMode:
		runGUI(chunk, path, cfg)
	default:
		runPlain(chunk, cfg)
	}
}

// printDisassembly writes the chunk listing to stdout, wrapping it in
// an ANSI cyan escape when color is enabled. Plain fmt/ANSI rather
// than a color library, matching the teacher's own trace output.
func printDisassembly(chunk *bytecode.Chunk, color bool) {
	if !color {
		debug.Disassemble(os.Stdout, chunk)
		return
	}
	fmt.Print("\x1b[36m")
	debug.Disassemble(os.Stdout, chunk)
	fmt.Print("\x1b[0m")
}

func runPlain(chunk *bytecode.Chunk, cfg *config.Config) {
	machine := vm.New(chunk)
	machine.MaxStack = cfg.VM.MaxStack
	machine.MaxSteps = cfg.VM.MaxSteps
	if err := machine.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
	if n := len(machine.Stack); n > 0 {
		fmt.Println(machine.Stack[n-1])
	}
}

func runTUI(chunk *bytecode.Chunk, name string, cfg *config.Config) {
	svc := debugsvc.New(chunk, cfg.Debugger.HistorySize)
	if err := tui.New(svc, name).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}

func runGUI(chunk *bytecode.Chunk, name string, cfg *config.Config) {
	svc := debugsvc.New(chunk, cfg.Debugger.HistorySize)
	gui.New(svc, name).Run()
}
