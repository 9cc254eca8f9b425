package router_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/externref/macro/core/router"
)

func TestParams(t *testing.T) {
	t.Parallel()

	p, err := router.CompilePattern("/files/{bucket}/{id:int}/{ratio:float}/{rev:uint}")
	require.NoError(t, err)

	params, ok := p.Match("/files/media/-7/0.5/3")
	require.True(t, ok)

	t.Run("len and keys in pattern order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 4, params.Len())
		assert.Equal(t, []string{"bucket", "id", "ratio", "rev"}, params.Keys())
	})

	t.Run("typed accessors", func(t *testing.T) {
		t.Parallel()

		bucket, ok := params.String("bucket")
		require.True(t, ok)
		assert.Equal(t, "media", bucket)

		id, ok := params.Int("id")
		require.True(t, ok)
		assert.Equal(t, int64(-7), id)

		ratio, ok := params.Float("ratio")
		require.True(t, ok)
		assert.InDelta(t, 0.5, ratio, 1e-9)

		rev, ok := params.Uint("rev")
		require.True(t, ok)
		assert.Equal(t, uint64(3), rev)
	})

	t.Run("raw returns original segment text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "-7", params.Raw("id"))
		assert.Equal(t, "0.5", params.Raw("ratio"))
		assert.Equal(t, "", params.Raw("missing"))
	})

	t.Run("get returns coerced values", func(t *testing.T) {
		t.Parallel()

		v, ok := params.Get("id")
		require.True(t, ok)
		assert.Equal(t, int64(-7), v)

		_, ok = params.Get("missing")
		assert.False(t, ok)
	})

	t.Run("accessor with wrong type reports failure", func(t *testing.T) {
		t.Parallel()

		_, ok := params.Int("bucket")
		assert.False(t, ok)

		_, ok = params.String("id")
		assert.False(t, ok)
	})

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()

		var empty router.Params
		assert.Equal(t, 0, empty.Len())
		_, ok := empty.Get("x")
		assert.False(t, ok)
	})
}
