package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeExtension writes an executable shell script named stmt-<name> in dir.
func writeExtension(t *testing.T, dir, name, script string) {
	t.Helper()
	path := filepath.Join(dir, "stmt-"+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("Failed to write extension: %v", err)
	}
}

func TestRunExtension(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv(EnvCurrency, "USD")
	t.Setenv(EnvInput, "statement.json")
	t.Setenv(EnvVerbose, "")

	writeExtension(t, tempDir, "render-test", `
echo "$STMT_INPUT $STMT_CURRENCY $STMT_VERBOSE" > "$1"
cat >> "$1"
`)

	out := filepath.Join(tempDir, "out.txt")
	found, code := RunExtension("render-test", []string{out}, strings.NewReader(`{"label":"A","value":1}`+"\n"))
	if !found || code != 0 {
		t.Fatalf("RunExtension() = %v, %d, want true, 0", found, code)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "statement.json USD false\n" + `{"label":"A","value":1}` + "\n"
	if string(got) != want {
		t.Errorf("extension output = %q, want %q", got, want)
	}
}

func TestRunExtension_ExitCode(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	writeExtension(t, tempDir, "fail", "exit 3\n")

	found, code := RunExtension("fail", nil, strings.NewReader(""))
	if !found || code != 3 {
		t.Errorf("RunExtension() = %v, %d, want true, 3", found, code)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, _ := RunExtension("missing", nil, nil); found {
		t.Errorf("RunExtension(missing) found an extension")
	}
}
