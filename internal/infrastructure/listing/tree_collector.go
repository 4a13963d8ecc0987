package listing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/ports"
)

// TreeCollector implements ListingCollector by running the configured
// listing utility (tree -L 1 by default).
type TreeCollector struct {
	dir string
}

// NewTreeCollector builds a collector; an empty dir lists the process working directory.
func NewTreeCollector(dir string) *TreeCollector {
	return &TreeCollector{dir: dir}
}

// Collect runs the listing utility and returns its stdout verbatim.
func (c *TreeCollector) Collect(ctx context.Context, cfg domain.Config) (domain.Listing, error) {
	wd := c.dir
	if wd == "" {
		var err error
		if wd, err = os.Getwd(); err != nil {
			return domain.Listing{}, fmt.Errorf("resolve working directory: %w", err)
		}
	}

	name, args := cfg.GetListingCommand()
	commandLine := strings.Join(append([]string{name}, args...), " ")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = wd
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return domain.Listing{}, fmt.Errorf("%w: %s", domain.ErrListingToolMissing, name)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return domain.Listing{}, &domain.CommandError{
			Stage:    domain.StageListing,
			Command:  commandLine,
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}
	}
	if err != nil {
		return domain.Listing{}, fmt.Errorf("run %s: %w", commandLine, err)
	}

	return domain.Listing{
		Text:       stdout.String(),
		WorkingDir: wd,
		Command:    commandLine,
	}, nil
}

var _ ports.ListingCollector = (*TreeCollector)(nil)
