// Package checker tests the required-file existence check and report formatting.
// Related: internal/checker/checker.go
// Tags: checker, required-files, report

package checker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes to dir for the duration of the test, restoring the
// original working directory on cleanup (t.Chdir requires Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()

	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})
}

// writeFiles creates the named files in dir with placeholder content.
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
	}
}

func TestRequiredFiles_FixedList(t *testing.T) {
	t.Parallel()

	// The list and its order are part of the external contract.
	assert.Equal(t, []string{"README.md", ".gitignore"}, RequiredFiles)
}

func TestCheck_Subsets(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		present     []string
		wantPassed  bool
		wantMissing []string
	}{
		"both present": {
			present:     []string{"README.md", ".gitignore"},
			wantPassed:  true,
			wantMissing: nil,
		},
		"README.md missing": {
			present:     []string{".gitignore"},
			wantPassed:  false,
			wantMissing: []string{"README.md"},
		},
		".gitignore missing": {
			present:     []string{"README.md"},
			wantPassed:  false,
			wantMissing: []string{".gitignore"},
		},
		"both missing": {
			present:     nil,
			wantPassed:  false,
			wantMissing: []string{"README.md", ".gitignore"},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeFiles(t, dir, tt.present...)

			report, err := Check(dir, RequiredFiles)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPassed, report.Passed)
			assert.Equal(t, tt.wantMissing, report.Missing)
			assert.Len(t, report.Results, len(RequiredFiles))
		})
	}
}

func TestCheck_DirectoryCountsAsPresent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "README.md"), 0o755))
	writeFiles(t, dir, ".gitignore")

	report, err := Check(dir, RequiredFiles)
	require.NoError(t, err)

	assert.True(t, report.Passed)
	assert.Empty(t, report.Missing)
}

func TestCheck_PreservesEncounterOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, "b.txt")

	report, err := Check(dir, []string{"a.txt", "b.txt", "c.txt"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "c.txt"}, report.Missing)
}

func TestCheck_StatErrorPropagates(t *testing.T) {
	t.Parallel()

	// A path routed through a regular file yields ENOTDIR, which is not
	// "not exist" and must abort the pass.
	dir := t.TempDir()
	writeFiles(t, dir, "blocker")

	_, err := Check(dir, []string{filepath.Join("blocker", "README.md")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checking")
}

func TestCheckCurrentDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "README.md", ".gitignore")
	chdir(t, dir)

	report, err := CheckCurrentDir()
	require.NoError(t, err)
	assert.True(t, report.Passed)
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		report *Report
		want   string
	}{
		"passing report formats empty": {
			report: &Report{Passed: true},
			want:   "",
		},
		"single missing file": {
			report: &Report{Missing: []string{"README.md"}},
			want:   "ERROR: The following required files are missing:\n - README.md\n",
		},
		"both missing in list order": {
			report: &Report{Missing: []string{"README.md", ".gitignore"}},
			want:   "ERROR: The following required files are missing:\n - README.md\n - .gitignore\n",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FormatReport(tt.report))
		})
	}
}

func TestCheckThenFormat_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, ".gitignore")

	report, err := Check(dir, RequiredFiles)
	require.NoError(t, err)

	output := FormatReport(report)
	assert.Contains(t, output, MissingHeader)
	assert.Contains(t, output, " - README.md\n")
	assert.NotContains(t, output, " - .gitignore")
}
