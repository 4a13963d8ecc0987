package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/doeshing/orgai/internal/ports"
)

// ConsoleProgress prints pipeline steps and animates a spinner on a terminal.
type ConsoleProgress struct {
	out         io.Writer
	spinOut     io.Writer
	spinEnabled bool
}

// NewConsoleProgress writes steps to out. The spinner goes to spinOut and is
// only drawn when spinOut is a terminal.
func NewConsoleProgress(out, spinOut io.Writer) *ConsoleProgress {
	return &ConsoleProgress{out: out, spinOut: spinOut, spinEnabled: isTerminal(spinOut)}
}

func (p *ConsoleProgress) Step(message string) {
	fmt.Fprintf(p.out, "[*] %s\n", message)
}

func (p *ConsoleProgress) Section(title, body string) {
	fmt.Fprintf(p.out, "\n--- %s ---\n", title)
	fmt.Fprintln(p.out, strings.TrimRight(body, "\n"))
	fmt.Fprintln(p.out, strings.Repeat("-", len(title)+8))
}

func (p *ConsoleProgress) Wait(label string) func() {
	if !p.spinEnabled {
		return func() {}
	}
	spinner := NewSpinner(p.spinOut, label)
	spinner.Start()
	return spinner.Stop
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var _ ports.ProgressReporter = (*ConsoleProgress)(nil)
