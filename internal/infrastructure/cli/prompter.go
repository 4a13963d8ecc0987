package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/ports"
)

const confirmPrompt = "Do you want to execute this script? (y/N): "

var scriptRule = strings.Repeat("=", 60)

// Prompter implements ConfirmationPrompter using stdin/stdout.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm shows the script with the risk warning and reads one answer.
// Only "y" or "Y" approves. Input that ends before anything is read
// returns domain.ErrConfirmationUnavailable.
func (p *Prompter) Confirm(script domain.Script) (bool, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "Generated Script:")
	fmt.Fprintln(p.out, scriptRule)
	fmt.Fprintln(p.out, script.String())
	fmt.Fprintln(p.out, scriptRule)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "WARNING: Executing AI-generated code can be risky.")
	fmt.Fprintln(p.out, "Review the script above carefully.")
	fmt.Fprintln(p.out, "Ensure filenames with spaces are quoted.")
	fmt.Fprintln(p.out)
	fmt.Fprint(p.out, confirmPrompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			fmt.Fprintln(p.out)
			return false, domain.ErrConfirmationUnavailable
		}
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
