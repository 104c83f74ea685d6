package composables_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civisafe/civisafe/pkg/composables"
)

func TestUseTx_BareContext(t *testing.T) {
	_, err := composables.UseTx(context.Background())
	assert.ErrorIs(t, err, composables.ErrNoPool)
}

func TestInTxResult_BareContext(t *testing.T) {
	ran := false
	_, err := composables.InTxResult(context.Background(), func(context.Context) (int64, error) {
		ran = true
		return 0, nil
	})
	assert.ErrorIs(t, err, composables.ErrNoPool)
	assert.False(t, ran)
}
