package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "object error",
			args: []string{"totalPriceMin", "item"},
			want: []string{"totalPriceMin.item", "totalPriceMin"},
		},
		{
			name: "field error without type",
			args: []string{"required", "item", "itemName"},
			want: []string{"required.item.itemName", "required.itemName", "required"},
		},
		{
			name: "field error with type",
			args: []string{"typeMismatch", "item", "price", "int64"},
			want: []string{"typeMismatch.item.price", "typeMismatch.price", "typeMismatch.int64", "typeMismatch"},
		},
		{
			name: "prefix",
			args: []string{"--prefix", "v.", "max", "item"},
			want: []string{"v.max.item", "v.max"},
		},
		{
			name: "postfix",
			args: []string{"--postfix", "max", "item", "quantity"},
			want: []string{"item.quantity.max", "quantity.max", "max"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, errOut, code := run(t, append([]string{"codes"}, tt.args...)...)

			assert.Zero(t, code, errOut)
			assert.Equal(t, tt.want, strings.Fields(out))
		})
	}
}

func TestCodes_ArgumentCount(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"codes"}, {"codes", "required"}, {"codes", "a", "b", "c", "d", "e"}} {
		_, errOut, code := run(t, args...)
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "arg(s)")
	}
}
