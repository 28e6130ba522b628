package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdidvp/namefix/internal/adapters/inbound/cli"
)

const (
	rustSource  = "let x = 5;\nprintln!(\"{}\", x);\n"
	rustFixed   = "let yourmom = 5;\nprintln!(\"{}\", yourmom);\n"
	pySource    = "tmp = 1\nprint(tmp)\n"
	goSource    = "package main\n\nfunc main() {\n\ttotal := 3\n\tprintln(total)\n}\n"
	nestedJS    = "const tmp = 1;\nconsole.log(tmp);\n"
	nestedFixed = "const yourmom = 1;\nconsole.log(yourmom);\n"
)

// writeProject lays out files under a fresh temp dir and returns it.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return dir
}

func sampleProject(t *testing.T) string {
	return writeProject(t, map[string]string{
		"main.rs":        rustSource,
		"app.py":         pySource,
		"clean.go":       goSource,
		"notes.txt":      "x = 1\n",
		"nested/util.js": nestedJS,
	})
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
