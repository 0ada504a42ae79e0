package commands

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc/internal/domain"
	"calc/internal/editor"
	"calc/internal/expr"
	"calc/internal/httpapi"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	out, err := run(t, "", "eval", "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)

	out, err = run(t, "", "eval", "(2+3)", "*4")
	require.NoError(t, err)
	assert.Equal(t, "20\n", out)

	out, err = run(t, "", "eval", "--", "-7%3")
	require.NoError(t, err)
	assert.Equal(t, "-1\n", out)
}

func TestEval_Error(t *testing.T) {
	out, err := run(t, "", "eval", "5/0")
	require.Error(t, err)
	assert.Equal(t, "Error: Divide by 0", err.Error())
	assert.Empty(t, out)
}

func TestEval_Precision(t *testing.T) {
	out, err := run(t, "", "--precision", "3", "eval", "2/3")
	require.NoError(t, err)
	assert.Equal(t, "0.667\n", out)
}

func TestEval_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_length: 4\nprecision: 2\n"), 0o600))

	_, err := run(t, "", "--config", path, "eval", "100*100")
	assert.ErrorIs(t, err, domain.ErrOverflow)

	out, err := run(t, "", "--config", path, "--max-length", "8", "eval", "100*100")
	require.NoError(t, err)
	assert.Equal(t, "10000\n", out, "flags override the file")
}

func TestEval_InvalidConfig(t *testing.T) {
	_, err := run(t, "", "--max-length", "0", "eval", "1+1")
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	out, err := run(t, "", "keys", "1", "2", "+", "5", "+/-")
	require.NoError(t, err)
	assert.Equal(t, "12+-5\n", out)

	out, err = run(t, "", "keys", "1", "2", "+", "5", "+/-", "=")
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	_, err = run(t, "", "keys", "1", "sqrt")
	assert.ErrorIs(t, err, domain.ErrUnknownKey)
}

func TestKeys_Trace(t *testing.T) {
	out, err := run(t, "", "keys", "--trace", "3", "/", "0", "=")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "after_operator")
	assert.Contains(t, lines[3], "error")
	assert.Contains(t, lines[3], "Error: Divide by 0")
}

func TestRemote(t *testing.T) {
	ev := expr.Default()
	ts := httptest.NewServer(httpapi.NewServer(editor.New(ev, domain.MaxDisplayLength), ev, nil).Handler())
	defer ts.Close()

	out, err := run(t, "", "--server", ts.URL, "eval", "10/4")
	require.NoError(t, err)
	assert.Equal(t, "2.5\n", out)

	_, err = run(t, "", "--server", ts.URL, "eval", "1%0")
	assert.ErrorIs(t, err, domain.ErrModuloByZero)

	out, err = run(t, "", "--server", ts.URL, "keys", "9", "-", "4", "=")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestREPL(t *testing.T) {
	in := "1 2 + 3\n=\n\n* 2 =\nsqrt\nCE\nquit\n7\n"
	out, err := run(t, in, "repl")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"12+3",
		"15",
		"30",
		`key 1: unknown key "sqrt"`,
		"30",
		"",
		"",
	}, "\n"), out)
}
