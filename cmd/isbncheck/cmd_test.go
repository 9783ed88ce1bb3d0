package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isbnapi/internal/isbn"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand(isbn.DefaultScheme)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}

func TestGenerate_Stdout(t *testing.T) {
	out, err := run(t, "generate", "--count", "2", "--multiples=false")
	require.NoError(t, err)
	assert.Equal(t,
		"1. 3916000002931 (Format: 3-9-16-000002931)\n"+
			"2. 3916000017946 (Format: 3-9-16-000017946)\n",
		out)
}

func TestGenerate_InvalidCount(t *testing.T) {
	_, err := run(t, "generate", "--count", "251")
	assert.ErrorIs(t, err, isbn.ErrInvalidCount)
}

func TestGenerate_MalformedPublisher(t *testing.T) {
	_, err := run(t, "generate", "--publisher", "abc")
	assert.ErrorIs(t, err, isbn.ErrMalformedInput)
}

func TestGenerateThenCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.txt")

	out, err := run(t, "generate", "-n", "20", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 20 codes to "+path)
	assert.Contains(t, out, "next offset 140")

	out, err = run(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Checking 20 codes")
	assert.Contains(t, out, "All 20 codes are valid")
}

func TestCheck_ReportsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.txt")
	content := strings.Join([]string{
		"1. 3916000002931 (Format: 3-9-16-000002931)",
		"2. 9783161484100 (Format: 9-7-83-161484100)",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := run(t, "check", path)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, out, "#2 INVALID: 9783161484100 (line 2)")
	assert.Contains(t, out, "expected remainders: [2 3 6 6 5]")
	assert.Contains(t, out, "actual remainders:   [1 0 4 4 4]")
	assert.Contains(t, out, "1 of 2 codes are invalid")
}

func TestCheck_MissingFile(t *testing.T) {
	_, err := run(t, "check", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "3916000002931")
	require.NoError(t, err)
	assert.Contains(t, out, "Format:    3-9-16-000002931")
	assert.Contains(t, out, "Result:    valid")

	out, err = run(t, "validate", "9783161484100")
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, out, "Expected:  [2 3 6 6 5]")
	assert.Contains(t, out, "Corrected: 9983000002058")

	_, err = run(t, "validate", "978-3-16-148410-0")
	assert.ErrorIs(t, err, isbn.ErrMalformedInput)
}
