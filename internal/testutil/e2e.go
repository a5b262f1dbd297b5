// Package testutil provides test utilities and helpers for reqcheck tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

var (
	// reqcheckBinaryPath caches the built reqcheck binary path.
	reqcheckBinaryPath string
	reqcheckBuildOnce  sync.Once
	reqcheckBuildErr   error
)

// E2EEnv provides an isolated working directory for E2E testing.
// Each environment gets its own empty temp directory so existence
// checks never see files from the repository or other tests.
type E2EEnv struct {
	t       *testing.T
	tempDir string
}

// CommandResult captures the result of running a reqcheck command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewE2EEnv creates a new E2E test environment with an empty temp
// working directory and a built reqcheck binary.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	env := &E2EEnv{t: t, tempDir: t.TempDir()}
	env.buildReqcheck()

	return env
}

func (e *E2EEnv) buildReqcheck() {
	e.t.Helper()

	// Build the reqcheck binary once per test session
	reqcheckBuildOnce.Do(func() {
		reqcheckBinaryPath, reqcheckBuildErr = buildBinary()
	})

	if reqcheckBuildErr != nil {
		e.t.Fatalf("building reqcheck: %v", reqcheckBuildErr)
	}
}

func buildBinary() (string, error) {
	// Navigate from internal/testutil/ to repo root
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("determining current file location")
	}
	repoRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")

	tmpDir, err := os.MkdirTemp("", "reqcheck-build-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir for build: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "reqcheck")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/reqcheck")
	cmd.Dir = repoRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("building reqcheck: %w\nOutput: %s", err, output)
	}

	return binaryPath, nil
}

// WriteFile creates a file with placeholder content in the working directory.
func (e *E2EEnv) WriteFile(name string) {
	e.t.Helper()

	path := filepath.Join(e.tempDir, name)
	if err := os.WriteFile(path, []byte("placeholder\n"), 0o644); err != nil {
		e.t.Fatalf("writing %s: %v", name, err)
	}
}

// MkDir creates a directory in the working directory.
func (e *E2EEnv) MkDir(name string) {
	e.t.Helper()

	path := filepath.Join(e.tempDir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		e.t.Fatalf("creating %s: %v", name, err)
	}
}

// TempDir returns the working directory for this test environment.
func (e *E2EEnv) TempDir() string {
	return e.tempDir
}

// Run executes reqcheck with the given arguments in the temp working directory.
func (e *E2EEnv) Run(args ...string) CommandResult {
	e.t.Helper()

	start := time.Now()

	cmd := exec.Command(reqcheckBinaryPath, args...)
	cmd.Dir = e.tempDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		ExitCode: 0,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = 1
		}
	}

	return result
}
