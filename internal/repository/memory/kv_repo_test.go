package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVRepo(t *testing.T) {
	ctx := context.Background()
	r := NewKVRepo()

	got, err := r.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Nil(t, got)

	value := []byte(`[1,2]`)
	require.NoError(t, r.Set(ctx, "cart", value))
	value[0] = 'x'

	got, err = r.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))

	got[0] = 'y'
	again, err := r.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(again))
}
