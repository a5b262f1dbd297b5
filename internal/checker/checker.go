// Package checker implements the required-file check. It scans a
// working directory for a fixed set of files in one sequential pass and
// returns a structured report consumed by the root command.
package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RequiredFiles is the fixed, ordered list of files every project must
// carry. The order determines reporting order and is part of the
// external contract.
var RequiredFiles = []string{
	"README.md",
	".gitignore",
}

// MissingHeader is the first line of the failure report.
const MissingHeader = "ERROR: The following required files are missing:"

// CheckResult records the outcome of a single existence check.
type CheckResult struct {
	Name    string
	Present bool
}

// Report contains the results of one required-file pass.
// Missing preserves encounter order, a subset of the checked list.
type Report struct {
	Results []CheckResult
	Missing []string
	Passed  bool
}

// Check performs one sequential pass over files, testing each for
// existence under dir. A directory entry counts as present. Stat
// failures other than "not exist" abort the pass.
func Check(dir string, files []string) (*Report, error) {
	report := &Report{
		Results: make([]CheckResult, 0, len(files)),
		Passed:  true,
	}

	for _, name := range files {
		_, err := os.Stat(filepath.Join(dir, name))
		switch {
		case err == nil:
			report.Results = append(report.Results, CheckResult{Name: name, Present: true})
		case os.IsNotExist(err):
			report.Results = append(report.Results, CheckResult{Name: name, Present: false})
			report.Missing = append(report.Missing, name)
			report.Passed = false
		default:
			return nil, fmt.Errorf("checking %s: %w", name, err)
		}
	}

	return report, nil
}

// CheckCurrentDir runs Check against the process working directory with
// the fixed RequiredFiles list.
func CheckCurrentDir() (*Report, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	return Check(cwd, RequiredFiles)
}

// FormatReport formats the missing-file report for console output.
// A passing report formats as the empty string; callers print nothing
// on success.
func FormatReport(r *Report) string {
	if r.Passed {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(MissingHeader + "\n")
	for _, name := range r.Missing {
		sb.WriteString(fmt.Sprintf(" - %s\n", name))
	}

	return sb.String()
}
