package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"convertor-generator/internal/sheet/sheettest"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(args ...string) result {
	var stdout, stderr bytes.Buffer

	code := runWithArgs(args, &stdout, &stderr)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func exampleWorkbook(t *testing.T, dir, name string) string {
	t.Helper()

	return sheettest.Write(t, dir, name, sheettest.Target(
		[]any{"id", "number", nil, "identifier", "number"},
	))
}

func readOutput(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestRun_HelpAndVersion(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}} {
		res := runCLI(args...)
		assert.Equal(t, exitOK, res.code)
		assert.Contains(t, res.stdout, "Usage: convertor-generator")
		assert.Empty(t, res.stderr)
	}

	for _, args := range [][]string{{"-v"}, {"--version"}} {
		res := runCLI(args...)
		assert.Equal(t, exitOK, res.code)
		assert.Equal(t, "convertor-generator dev\n", res.stdout)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	res := runCLI()
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "you need to choose file")
	assert.Contains(t, res.stderr, "Usage: convertor-generator")

	res = runCLI("--no-such-flag")
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "no-such-flag")
}

func TestRun_InvalidInputs(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	good := exampleWorkbook(t, dir, "good.xlsx")

	notExcel := filepath.Join(dir, "notes.csv")
	require.NoError(t, os.WriteFile(notExcel, []byte("a,b\n"), 0o644))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "missing file",
			args: []string{"-f", good, "-f", filepath.Join(dir, "missing.xlsx"), "-o", out},
			want: "file does not exist",
		},
		{
			name: "wrong extension",
			args: []string{"-f", good, "--file", notExcel, "-o", out},
			want: "file is not an excel workbook",
		},
		{
			name: "directory as file",
			args: []string{"-f", dir, "-o", out},
			want: "file does not exist",
		},
		{
			name: "empty file directory",
			args: []string{"--fileDir", t.TempDir(), "-o", out},
			want: "no .xlsx files",
		},
		{
			name: "input inside output directory",
			args: []string{"-f", good, "-o", dir},
			want: "inside the output directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(tt.args...)
			assert.Equal(t, exitFailure, res.code)
			assert.Contains(t, res.stderr, tt.want)
			assert.NoDirExists(t, out)
		})
	}
}

func TestRun_MissingTargetTableWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	good := exampleWorkbook(t, dir, "good.xlsx")
	bad := sheettest.Write(t, dir, "bad.xlsx", sheettest.Sheet{
		Name: "mappings",
		Rows: [][]any{sheettest.Header},
	})

	res := runCLI("-f", good, "-f", bad, "-o", out)
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "missing_target_table")
	assert.NoDirExists(t, out)
}

func TestRun_FailureKeepsPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	good := exampleWorkbook(t, dir, "good.xlsx")

	require.Equal(t, exitOK, runCLI("-f", good, "-o", out).code)

	bad := sheettest.Write(t, dir, "bad.xlsx", sheettest.Target(
		[]any{nil, nil, nil, "", "string"},
	))

	res := runCLI("-f", bad, "-o", out)
	assert.Equal(t, exitFailure, res.code)
	assert.FileExists(t, filepath.Join(out, "good-converter.ts"))
	assert.NoFileExists(t, filepath.Join(out, "bad-converter.ts"))
}

func TestRun_SingleFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	input := exampleWorkbook(t, dir, "example.xlsx")

	res := runCLI("-f", input, "-o", out)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "load "+input)
	assert.Contains(t, res.stdout, "info: "+input+": config: [no_config_sheet]")
	assert.Contains(t, res.stdout, "generated "+filepath.Join(out, "example-converter.ts"))

	got := readOutput(t, filepath.Join(out, "example-converter.ts"))
	assert.Contains(t, got, "export type From = {\n  id: number;\n};")
	assert.Contains(t, got, "export type To = {\n  identifier: number;\n};")
	assert.Contains(t, got, "export const convert = (from: From): To => {")
	assert.Contains(t, got, "    identifier: from.id,\n")
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	input := exampleWorkbook(t, dir, "example.xlsx")

	require.Equal(t, exitOK, runCLI("-f", input, "--outDir", out).code)

	stale := filepath.Join(out, "stale.ts")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	first := readOutput(t, filepath.Join(out, "example-converter.ts"))

	require.Equal(t, exitOK, runCLI("-f", input, "--outDir", out).code)

	assert.Equal(t, first, readOutput(t, filepath.Join(out, "example-converter.ts")))
	assert.NoFileExists(t, stale)
}

func TestRun_FileDir(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "excel")
	out := filepath.Join(dir, "dist")
	require.NoError(t, os.Mkdir(in, 0o755))

	exampleWorkbook(t, in, "b.xlsx")
	exampleWorkbook(t, in, "a.xlsx")
	require.NoError(t, os.WriteFile(filepath.Join(in, "~$a.xlsx"), []byte("lock"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "readme.txt"), []byte("x"), 0o644))

	extra := exampleWorkbook(t, dir, "extra.xlsx")

	res := runCLI("--fileDir", in, "-f", extra, "--outdir", out, "--quiet")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Empty(t, res.stdout)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}

	assert.Equal(t, []string{"a-converter.ts", "b-converter.ts", "extra-converter.ts"}, names)
}

func TestRun_DuplicateOutputName(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	first := exampleWorkbook(t, dir, "same.xlsx")
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	second := exampleWorkbook(t, sub, "same.xlsx")

	res := runCLI("-f", first, "-f", second, "-o", out)
	assert.Equal(t, exitFailure, res.code)
	assert.NoDirExists(t, out)
}

func TestRun_StrictDuplicates(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	input := sheettest.Write(t, dir, "dup.xlsx", sheettest.Target(
		[]any{"a", "string", nil, "name", "string"},
		[]any{"b", "string", nil, "name", "string"},
	))

	res := runCLI("-f", input, "-o", out)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stderr, "warning:")
	assert.Contains(t, res.stderr, "duplicate_to_property")
	assert.Contains(t, readOutput(t, filepath.Join(out, "dup-converter.ts")), "name: from.b,")

	res = runCLI("-f", input, "-o", filepath.Join(dir, "strict"), "--strict")
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "error:")
	assert.NoDirExists(t, filepath.Join(dir, "strict"))
}

func TestRun_ConfigLayers(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	input := sheettest.Write(t, dir, "users.xlsx",
		sheettest.Target([]any{"id", "number", nil, "identifier", "number"}),
		sheettest.Config("dest_type_name", "User"),
	)

	cfg := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(
		"outdir: ./generated\nnames:\n  function_name: toUser\n  source_type_name: UserRow\n"), 0o644))

	t.Setenv("CONVGEN_PARAM", "row")

	res := runCLI("-f", input, "-c", cfg)
	require.Equal(t, exitOK, res.code, res.stderr)

	got := readOutput(t, filepath.Join(dir, "generated", "users-converter.ts"))
	assert.Contains(t, got, "export const toUser = (row: UserRow): User => {")
	assert.Contains(t, got, "identifier: row.id,")

	res = runCLI("-f", input, "-c", cfg, "-o", "flagged")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(dir, "flagged", "users-converter.ts"))
}

func TestRun_DefaultOutDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	exampleWorkbook(t, dir, "example.xlsx")

	res := runCLI("-f", "example.xlsx")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.FileExists(t, filepath.Join(dir, "out", "example-converter.ts"))
}

func TestRun_UnsafeOutDir(t *testing.T) {
	dir := t.TempDir()
	input := exampleWorkbook(t, dir, "example.xlsx")

	sub := filepath.Join(dir, "work")
	require.NoError(t, os.Mkdir(sub, 0o755))
	chdir(t, sub)

	res := runCLI("-f", input, "-o", ".")
	assert.Equal(t, exitFailure, res.code)
	assert.DirExists(t, sub)
}

func TestRun_PrintConfig(t *testing.T) {
	t.Setenv("CONVGEN_FUNCTION", "toDto")

	res := runCLI("--print-config", "-o", "dist", "--strict")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "outdir: dist\n")
	assert.Contains(t, res.stdout, "strict: true\n")
	assert.Contains(t, res.stdout, "function_name: toDto\n")
}

func TestRun_MissingTargetTableReportsDiagnostic(t *testing.T) {
	dir := t.TempDir()
	bad := sheettest.Write(t, dir, "bad.xlsx", sheettest.Sheet{Name: "mappings", Rows: [][]any{sheettest.Header}})

	res := runCLI("-f", bad, "-o", filepath.Join(dir, "out"))
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "error: "+bad+": [missing_target_table] target sheet does not exist (sheets: mappings)")
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
