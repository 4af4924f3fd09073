package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/repaso/internal/backup"
	"github.com/abhisek/repaso/internal/bank"
)

const sampleDataset = "../internal/bank/testdata/sample.json"

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Sociedad", truncate("Sociedad", 10))
	assert.Equal(t, "Organiz...", truncate("Organización territorial", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

// run executes the root command with args and input and returns what was
// written to stdout.
func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("REPASO_CONFIG", "")
	t.Setenv("REPASO_DB", "")
	t.Setenv("REPASO_DATASET", "")
	t.Setenv("REPASO_LOG", "off")
	return dir
}

func TestCLI_EndToEnd(t *testing.T) {
	dir := isolate(t)
	db := filepath.Join(dir, "repaso.db")
	common := []string{"--dataset", sampleDataset, "--db", db}

	out, err := run(t, "", append([]string{"validate"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "3 questions")

	// 1001 right, 2001 wrong twice (requeued into the last slot). Each
	// answer is followed by a key that dismisses the feedback.
	out, err = run(t, "b\rb\rb\r", append([]string{"practice", "--preset", "short"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Session over")
	assert.Contains(t, out, "2 answered, 1 correct")

	out, err = run(t, "", append([]string{"weak"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "2001")

	out, err = run(t, "", append([]string{"stats"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "3 answers recorded")

	out, err = run(t, "", append([]string{"history", "--answers", "2"}, common...)...)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "2001"))

	backup := filepath.Join(dir, "backup.json.gz")
	_, err = run(t, "", append([]string{"export", "--gzip", "--out", backup}, common...)...)
	require.NoError(t, err)

	_, err = run(t, "", append([]string{"reset", "--yes"}, common...)...)
	require.NoError(t, err)
	out, err = run(t, "", append([]string{"weak"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "No weak questions")

	out, err = run(t, "", append([]string{"import", backup}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 questions")

	_, err = run(t, "", append([]string{"exam"}, common...)...)
	assert.ErrorContains(t, err, "cannot build an exam")
}

func TestCLI_ValidateReportsProblems(t *testing.T) {
	dir := isolate(t)
	data, err := os.ReadFile(sampleDataset)
	require.NoError(t, err)
	broken := strings.Replace(string(data), `"id": "2001"`, `"id": "1001"`, 1)
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(broken), 0o644))

	out, err := run(t, "", "validate", "--dataset", path)
	assert.ErrorContains(t, err, "1 problems found")
	assert.Contains(t, out, "duplicate_question_id")
}

func TestCLI_RequiresDataset(t *testing.T) {
	isolate(t)
	_, err := run(t, "", "stats", "--dataset", "", "--db", filepath.Join(t.TempDir(), "x.db"))
	assert.ErrorIs(t, err, errNoDataset)
}

func TestCLI_Version(t *testing.T) {
	isolate(t)
	out, err := run(t, "", "version", "--short=false")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "repaso "+buildVersion(), lines[0])
	assert.Contains(t, lines[1], bank.DatasetVersion)
	assert.Contains(t, lines[2], fmt.Sprintf("schema v%d", backup.SchemaVersion))

	out, err = run(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, buildVersion()+"\n", out)
}
