package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ValueOr(nil, 0))
	assert.Equal(t, 25, ValueOr(PtrTo(25), 0))
}
