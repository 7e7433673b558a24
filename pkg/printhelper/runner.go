package printhelper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoHelper is returned when none of the configured helper commands exist
// on disk. Callers report this as a message, not a hard failure.
var ErrNoHelper = errors.New("printhelper: no helper executable found")

// Command is one candidate invocation of the print helper. Candidates are
// tried in order; a relative Path is resolved against the working directory.
type Command struct {
	Path string
	Args []string
}

// Invocation captures the outcome of a helper run.
type Invocation struct {
	Command string
	Stdout  string
	Stderr  string
}

// Runner invokes the external print helper with the bill artifact path as
// its final argument.
type Runner interface {
	// Run executes the first viable candidate. A candidate whose executable
	// is missing or fails to start falls through to the next one; a helper
	// that starts and exits non-zero does not (its failure is the result).
	Run(ctx context.Context, artifactPath string) (*Invocation, error)
	// Resolve returns the path of the first existing candidate.
	Resolve() (string, bool)
}

// --- Exec runner (spawns the platform helper process) ---

type execRunner struct {
	workDir    string
	candidates []Command
}

// NewExecRunner creates a runner that executes helper candidates with the
// given working directory (the artifact folder).
func NewExecRunner(workDir string, candidates []Command) Runner {
	return &execRunner{workDir: workDir, candidates: candidates}
}

func (r *execRunner) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.workDir, path)
}

func (r *execRunner) Resolve() (string, bool) {
	for _, cand := range r.candidates {
		full := r.resolvePath(cand.Path)
		if _, err := os.Stat(full); err == nil {
			return full, true
		}
	}
	return "", false
}

func (r *execRunner) Run(ctx context.Context, artifactPath string) (*Invocation, error) {
	var startErrs []string

	for _, cand := range r.candidates {
		full := r.resolvePath(cand.Path)
		if _, err := os.Stat(full); err != nil {
			continue
		}

		args := append(append([]string{}, cand.Args...), artifactPath)
		cmd := exec.CommandContext(ctx, full, args...)
		cmd.Dir = r.workDir

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Start(); err != nil {
			// Spawn failure: this binary exists but cannot run (wrong arch,
			// permissions). Fall back to the next candidate.
			startErrs = append(startErrs, fmt.Sprintf("%s: %v", full, err))
			continue
		}

		runErr := cmd.Wait()
		inv := &Invocation{
			Command: full,
			Stdout:  strings.TrimSpace(stdout.String()),
			Stderr:  strings.TrimSpace(stderr.String()),
		}
		if runErr != nil {
			return inv, fmt.Errorf("printhelper: %s failed: %w", filepath.Base(full), runErr)
		}
		return inv, nil
	}

	if len(startErrs) > 0 {
		return nil, fmt.Errorf("printhelper: all candidates failed to start: %s", strings.Join(startErrs, "; "))
	}
	return nil, ErrNoHelper
}

// --- Null runner (no-op, used when printing is disabled) ---

type nullRunner struct{}

// NewNullRunner creates a no-op runner for environments without a helper.
func NewNullRunner() Runner {
	return &nullRunner{}
}

func (r *nullRunner) Run(ctx context.Context, artifactPath string) (*Invocation, error) {
	return nil, ErrNoHelper
}

func (r *nullRunner) Resolve() (string, bool) {
	return "", false
}
