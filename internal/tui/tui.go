// Package tui is the interactive full-screen bytecode debugger,
// grounded on the teacher's text user interface (debugger/tui.go),
// narrowed to the three panels a stack VM has: disassembly, operand
// stack, and constant pool.
package tui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lookbusy1344/poke/internal/debug"
	"github.com/lookbusy1344/poke/internal/debugsvc"
)

// TUI is the interactive debugger's view layer over a debugsvc.Service.
type TUI struct {
	Service *debugsvc.Service

	App      *tview.Application
	Layout   *tview.Flex
	DisasmV  *tview.TextView
	StackV   *tview.TextView
	ConstV   *tview.TextView
	OutputV  *tview.TextView
	CommandI *tview.InputField
}

// New builds a TUI over svc, wired for a chunk named name.
func New(svc *debugsvc.Service, name string) *TUI {
	t := &TUI{
		Service: svc,
		App:     tview.NewApplication(),
	}
	t.initViews(name)
	t.buildLayout()
	t.setupKeyBindings()
	return t
}

func (t *TUI) initViews(name string) {
	t.DisasmV = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.DisasmV.SetBorder(true).SetTitle(fmt.Sprintf(" Disassembly: %s ", name))

	t.StackV = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.StackV.SetBorder(true).SetTitle(" Stack ")

	t.ConstV = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.ConstV.SetBorder(true).SetTitle(" Constants ")

	t.OutputV = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true)
	t.OutputV.SetBorder(true).SetTitle(" Output ")

	t.CommandI = tview.NewInputField().SetLabel("> ")
	t.CommandI.SetBorder(true).SetTitle(" Command (step/continue/break N/clear N/run/quit) ")
	t.CommandI.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.StackV, 0, 1, false).
		AddItem(t.ConstV, 0, 1, false)

	top := tview.NewFlex().
		AddItem(t.DisasmV, 0, 2, false).
		AddItem(right, 0, 1, false)

	t.Layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 3, false).
		AddItem(t.OutputV, 0, 1, false).
		AddItem(t.CommandI, 3, 0, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF11:
			t.execute("step")
			return nil
		case tcell.KeyF5:
			t.execute("continue")
			return nil
		case tcell.KeyCtrlC:
			t.App.Stop()
			return nil
		}
		return event
	})
	t.CommandI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			t.CommandI.SetText(t.Service.History.Previous())
			return nil
		case tcell.KeyDown:
			t.CommandI.SetText(t.Service.History.Next())
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := t.CommandI.GetText()
	if cmd == "" {
		return
	}
	t.Service.History.Add(cmd)
	t.CommandI.SetText("")
	t.execute(cmd)
}

func (t *TUI) execute(cmd string) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "quit", "q":
		t.App.Stop()
		return
	case "step", "s":
		st := t.Service.Step()
		t.report(st)
	case "continue", "c":
		st := t.Service.Continue()
		t.report(st)
	case "run", "r":
		t.Service.Reset()
		t.report(t.Service.Snapshot())
	case "break", "b":
		if off, err := parseOffset(fields); err == nil {
			t.Service.Breakpoints.Set(off)
			fmt.Fprintf(t.OutputV, "breakpoint set at offset %d\n", off)
		}
	case "clear":
		if off, err := parseOffset(fields); err == nil {
			t.Service.Breakpoints.Clear(off)
			fmt.Fprintf(t.OutputV, "breakpoint cleared at offset %d\n", off)
		}
	default:
		fmt.Fprintf(t.OutputV, "unknown command: %s\n", fields[0])
	}
	t.refresh()
}

func parseOffset(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("missing offset")
	}
	return strconv.Atoi(fields[1])
}

func (t *TUI) report(st debugsvc.State) {
	if st.Err != nil {
		fmt.Fprintf(t.OutputV, "[red]error:[white] %v\n", st.Err)
		return
	}
	if st.Halted {
		fmt.Fprintf(t.OutputV, "halted at ip=%d\n", st.IP)
	}
}

func (t *TUI) refresh() {
	t.updateDisasm()
	t.updateStack()
	t.updateConstants()
	t.App.Draw()
}

func (t *TUI) updateDisasm() {
	t.DisasmV.Clear()
	var buf bytes.Buffer
	debug.Disassemble(&buf, t.Service.Chunk)
	ip := t.Service.Snapshot().IP
	for _, line := range strings.Split(buf.String(), "\n") {
		fmt.Fprintln(t.DisasmV, line)
	}
	fmt.Fprintf(t.DisasmV, "\n[yellow]ip=%d[white]\n", ip)
}

func (t *TUI) updateStack() {
	t.StackV.Clear()
	st := t.Service.Snapshot()
	for i := len(st.Stack) - 1; i >= 0; i-- {
		fmt.Fprintf(t.StackV, "%2d: %s\n", i, st.Stack[i])
	}
}

func (t *TUI) updateConstants() {
	t.ConstV.Clear()
	for i, v := range t.Service.Chunk.Constants {
		fmt.Fprintf(t.ConstV, "%3d: %s\n", i, v)
	}
}

// Run starts the full-screen event loop.
func (t *TUI) Run() error {
	t.refresh()
	fmt.Fprintln(t.OutputV, "F11 step, F5 continue, ctrl-C quit")
	return t.App.SetRoot(t.Layout, true).SetFocus(t.CommandI).Run()
}
