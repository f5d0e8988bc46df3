// Package exec runs the external assemblers and evaluators contigs are
// compared against. Tools are opaque: they get paths in and leave files
// in an output directory.
package exec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a tool's executable can't be found.
var ErrNotFound = errors.New("executable not found")

// Tool is an external program.
type Tool struct {
	// Name of the tool in messages, ex: "QUAST"
	Name string

	// Path to the executable, or its name on the PATH
	Path string
}

// Error is a tool run that failed.
type Error struct {
	Tool     string
	ExitCode int
	Output   []byte
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to execute %s (exit %d): %v: %s", e.Tool, e.ExitCode, e.Err, e.Output)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Run runs the tool with args and returns its combined output. The
// process is killed if ctx is done first.
func Run(ctx context.Context, tool Tool, args ...string) ([]byte, error) {
	bin, err := exec.LookPath(tool.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s at %s", ErrNotFound, tool.Name, tool.Path)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		code := -1
		if cmd.ProcessState != nil {
			code = cmd.ProcessState.ExitCode()
		}
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return output, &Error{Tool: tool.Name, ExitCode: code, Output: output, Err: err}
	}
	return output, nil
}

// Scratch creates a uniquely named directory under root for one tool run.
func Scratch(root string) (string, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(root, id.String())
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create a scratch dir: %w", err)
	}
	return dir, nil
}

// threads for a tool, leaving a CPU free
func threads() string {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	return strconv.Itoa(n)
}
