package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/ports"
)

// LocalExecutor runs approved scripts on the host shell.
type LocalExecutor struct {
	dir string
}

// NewLocalExecutor builds a new executor; an empty dir runs in the process working directory.
func NewLocalExecutor(dir string) *LocalExecutor {
	return &LocalExecutor{dir: dir}
}

// Execute implements ports.ScriptExecutor. The script is passed as the
// argument after the configured shell flags (default "-e -c"), so the
// first failing command aborts the rest.
func (e *LocalExecutor) Execute(ctx context.Context, cfg domain.Config, script domain.Script) (domain.ExecutionResult, error) {
	shell := cfg.GetExecutionShell()
	args := append(cfg.GetExecutionShellArgs(), script.String())

	c := exec.CommandContext(ctx, shell, args...)
	c.Dir = e.dir
	// Children of a killed shell can hold the pipes open; stop waiting for them.
	c.WaitDelay = time.Second
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{
		Ran:        err == nil,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}

	if err != nil && ctx.Err() != nil {
		result.ExitCode = -1
		return result, fmt.Errorf("script stopped: %w", ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, &domain.CommandError{
			Stage:    domain.StageScript,
			Command:  shell,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Hint:     script.FirstCommandLine(),
		}
	}
	if err != nil {
		result.ExitCode = -1
		return result, fmt.Errorf("start %s: %w", shell, err)
	}
	return result, nil
}

var _ ports.ScriptExecutor = (*LocalExecutor)(nil)
