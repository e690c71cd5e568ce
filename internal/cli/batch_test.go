package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const batchInput = `[
  {"itemName": "Book", "price": 10000, "quantity": 10},
  {"itemName": "Pen", "price": "abc", "quantity": "10"},
  {"itemName": "Cup", "price": 1000, "quantity": 1}
]`

func TestBatch_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(batchInput), 0o600))

	out, errOut, code := run(t, "batch", "--workers", "2", path)

	assert.Equal(t, 1, code, errOut)
	assert.Contains(t, out, "#1: valid")
	assert.Contains(t, out, "#2 price: Please enter a number.")
	assert.Contains(t, out, "#3 item: Price × quantity must be at least 10,000. Current value = 1,000")
	assert.Contains(t, out, "2 of 3 invalid")
}

func TestBatch_FromStdinAllValid(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	root := NewRootCommand(&out, &errOut)
	root.SetIn(bytes.NewBufferString(`[{"itemName":"Book","price":1000,"quantity":10}]`))
	root.SetArgs([]string{"batch", "-"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, "#1: valid\n", out.String())
}

func TestBatch_Errors(t *testing.T) {
	t.Parallel()

	_, errOut, code := run(t, "batch", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "opening")

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"itemName": {"nested": true}}]`), 0o600))

	_, errOut, code = run(t, "batch", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "decoding forms")
}
