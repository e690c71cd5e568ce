package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	var out, errOut bytes.Buffer
	code := Execute(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestRootCommand(t *testing.T) {
	t.Parallel()

	root := NewRootCommand(&bytes.Buffer{}, &bytes.Buffer{})

	assert.Equal(t, "itemctl", root.Use)
	assert.True(t, root.SilenceUsage)
	assert.True(t, root.SilenceErrors)

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "batch")
	assert.Contains(t, names, "codes")

	for _, flag := range []string{"log-level", "lang"} {
		require.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	t.Parallel()

	_, errOut, code := run(t, "frobnicate")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown command")
}
