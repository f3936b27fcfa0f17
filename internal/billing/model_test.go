package billing

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionIDFormat(t *testing.T) {
	id := NewTransactionID()

	require.True(t, strings.HasPrefix(id, "PAY_"), "got %q", id)

	_, err := strconv.ParseInt(strings.TrimPrefix(id, "PAY_"), 10, 64)
	assert.NoError(t, err, "suffix must be a decimal timestamp")
}

func TestNewTransactionIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewTransactionID()
		assert.False(t, seen[id], "duplicate transaction id %q", id)
		seen[id] = true
	}
}
