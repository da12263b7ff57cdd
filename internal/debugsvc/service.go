// Package debugsvc is the stepping façade shared by the TUI and GUI
// debuggers, grounded on the teacher's DebuggerService
// (service/debugger_service.go). It observes a chunk and the VM
// running it; it never mutates compilation output and drives
// execution only one opcode at a time through vm.VM.Step, so it
// cannot introduce behavior the plain CLI run doesn't also have.
package debugsvc

import (
	"sync"

	"github.com/lookbusy1344/poke/internal/bytecode"
	"github.com/lookbusy1344/poke/internal/debug"
	"github.com/lookbusy1344/poke/internal/vm"
)

// State is one observed snapshot of the VM: where it is, what's on
// the stack, and what instruction runs next.
type State struct {
	IP      int
	Stack   []bytecode.Value
	Next    debug.Instruction
	HasNext bool
	Halted  bool
	Err     error
}

// Service wraps a *vm.VM and the chunk it runs.
type Service struct {
	mu          sync.Mutex
	Chunk       *bytecode.Chunk
	VM          *vm.VM
	Breakpoints *BreakpointSet
	History     *History
}

// New creates a Service around chunk, with a fresh VM positioned at
// offset 0.
func New(chunk *bytecode.Chunk, historySize int) *Service {
	return &Service{
		Chunk:       chunk,
		VM:          vm.New(chunk),
		Breakpoints: NewBreakpointSet(),
		History:     NewHistory(historySize),
	}
}

func (s *Service) snapshot(halted bool, err error) State {
	st := State{IP: s.VM.IP, Stack: append([]bytecode.Value(nil), s.VM.Stack...), Halted: halted, Err: err}
	if !halted && s.VM.IP < len(s.Chunk.Code) {
		st.Next = debug.DisassembleInstruction(s.Chunk, s.VM.IP, -1)
		st.HasNext = true
	}
	return st
}

// Snapshot returns the current state without advancing execution.
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(s.VM.State == vm.StateHalted, nil)
}

// Step advances the VM by exactly one opcode.
func (s *Service) Step() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	done, err := s.VM.Step()
	return s.snapshot(done, err)
}

// Continue steps until a breakpoint offset is hit, the VM halts, or
// an error occurs.
func (s *Service) Continue() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		done, err := s.VM.Step()
		if done || err != nil {
			return s.snapshot(done, err)
		}
		if s.Breakpoints.Has(s.VM.IP) {
			return s.snapshot(false, nil)
		}
	}
}

// Reset replaces the VM with a fresh one over the same chunk.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.VM = vm.New(s.Chunk)
}
