package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/go-item-service/internal/domain"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"path.itemId": "must be a number",
		"body.price":  "must be a string or a number",
	}}

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t,
		"validation error: body.price: must be a string or a number; path.itemId: must be a number",
		err.Error())

	var target *domain.ValidationError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.Len(t, target.Fields, 2)
}
