// Package gui is the desktop chunk viewer, grounded on the teacher's
// fyne-based debugger.GUI (debugger/gui.go), narrowed to the panels a
// stack VM has (disassembly, stack, constants) plus a toolbar.
package gui

import (
	"bytes"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/lookbusy1344/poke/internal/debug"
	"github.com/lookbusy1344/poke/internal/debugsvc"
)

// GUI is the read-mostly desktop window over a debugsvc.Service.
type GUI struct {
	Service *debugsvc.Service

	App    fyne.App
	Window fyne.Window

	DisasmView   *widget.TextGrid
	StackView    *widget.TextGrid
	ConstView    *widget.TextGrid
	ConsoleView  *widget.TextGrid
	StatusLabel  *widget.Label
	Toolbar      *widget.Toolbar
}

// New builds a GUI over svc, titled with name.
func New(svc *debugsvc.Service, name string) *GUI {
	g := &GUI{
		Service: svc,
		App:     app.New(),
	}
	g.Window = g.App.NewWindow(fmt.Sprintf("poke chunk viewer — %s", name))

	g.initViews()
	g.buildToolbar()
	g.buildLayout()
	g.refresh()

	g.Window.Resize(fyne.NewSize(1000, 700))
	return g
}

func (g *GUI) initViews() {
	g.DisasmView = widget.NewTextGrid()
	g.StackView = widget.NewTextGrid()
	g.ConstView = widget.NewTextGrid()
	g.ConsoleView = widget.NewTextGrid()
	g.StatusLabel = widget.NewLabel("ready")
}

func (g *GUI) buildToolbar() {
	g.Toolbar = widget.NewToolbar(
		widget.NewToolbarAction(theme.MediaSkipNextIcon(), g.step),
		widget.NewToolbarAction(theme.MediaFastForwardIcon(), g.cont),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), g.reset),
	)
}

func (g *GUI) buildLayout() {
	disasmPanel := container.NewBorder(widget.NewLabel("Disassembly"), nil, nil, nil, container.NewScroll(g.DisasmView))
	stackPanel := container.NewBorder(widget.NewLabel("Stack"), nil, nil, nil, container.NewScroll(g.StackView))
	constPanel := container.NewBorder(widget.NewLabel("Constants"), nil, nil, nil, container.NewScroll(g.ConstView))
	consolePanel := container.NewBorder(widget.NewLabel("Console"), nil, nil, nil, container.NewScroll(g.ConsoleView))

	right := container.NewVSplit(stackPanel, constPanel)
	right.SetOffset(0.5)

	main := container.NewHSplit(disasmPanel, right)
	main.SetOffset(0.6)

	bottom := container.NewVSplit(main, consolePanel)
	bottom.SetOffset(0.75)

	statusBar := container.NewBorder(nil, nil, nil, nil, g.StatusLabel)
	content := container.NewBorder(g.Toolbar, statusBar, nil, nil, bottom)
	g.Window.SetContent(content)
}

func (g *GUI) step() {
	st := g.Service.Step()
	g.report(st)
	g.refresh()
}

func (g *GUI) cont() {
	st := g.Service.Continue()
	g.report(st)
	g.refresh()
}

func (g *GUI) reset() {
	g.Service.Reset()
	g.StatusLabel.SetText("ready")
	g.refresh()
}

func (g *GUI) report(st debugsvc.State) {
	switch {
	case st.Err != nil:
		g.StatusLabel.SetText(fmt.Sprintf("error: %v", st.Err))
		fmt.Fprintf(consoleWriter{g}, "error: %v\n", st.Err)
	case st.Halted:
		g.StatusLabel.SetText(fmt.Sprintf("halted at ip=%d", st.IP))
	default:
		g.StatusLabel.SetText(fmt.Sprintf("ip=%d", st.IP))
	}
}

func (g *GUI) refresh() {
	var buf bytes.Buffer
	debug.Disassemble(&buf, g.Service.Chunk)
	g.DisasmView.SetText(buf.String())

	st := g.Service.Snapshot()
	var stack strings.Builder
	for i := len(st.Stack) - 1; i >= 0; i-- {
		fmt.Fprintf(&stack, "%2d: %s\n", i, st.Stack[i])
	}
	g.StackView.SetText(stack.String())

	var consts strings.Builder
	for i, v := range g.Service.Chunk.Constants {
		fmt.Fprintf(&consts, "%3d: %s\n", i, v)
	}
	g.ConstView.SetText(consts.String())
}

// consoleWriter appends text to the GUI's console panel.
type consoleWriter struct{ g *GUI }

func (w consoleWriter) Write(p []byte) (int, error) {
	w.g.ConsoleView.SetText(w.g.ConsoleView.Text() + string(p))
	return len(p), nil
}

// Run shows the window and blocks until it is closed.
func (g *GUI) Run() {
	g.Window.ShowAndRun()
}
