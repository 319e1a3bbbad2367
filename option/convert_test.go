package option_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Phponly/Onlyoption/option"
)

func TestFromPointer(t *testing.T) {
	t.Run("Defined", func(t *testing.T) {
		value := 5

		o := option.FromPointer(&value)

		require.True(t, o.IsDefined())
		assert.Equal(t, 5, o.MustGet())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.True(t, option.FromPointer[int](nil).IsEmpty())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		ptr := option.Some(5).Ptr()

		require.NotNil(t, ptr)
		assert.Equal(t, 5, *ptr)

		assert.Nil(t, option.None[int]().Ptr())
	})

	t.Run("PtrCopies", func(t *testing.T) {
		o := option.Some(5)

		*o.Ptr() = 7

		assert.Equal(t, 5, o.MustGet())
	})
}

func TestFromOk(t *testing.T) {
	entries := map[string]int{"a": 1}

	value, ok := entries["a"]
	assert.Equal(t, 1, option.FromOk(value, ok).MustGet())

	value, ok = entries["b"]
	assert.True(t, option.FromOk(value, ok).IsEmpty())
}

func TestMap(t *testing.T) {
	double := func(v int) int { return v * 2 }

	t.Run("Defined", func(t *testing.T) {
		assert.Equal(t, 10, option.Map(option.Some(5), double).GetOrElse(0))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, 0, option.Map(option.None[int](), double).GetOrElse(0))
	})

	t.Run("Identity", func(t *testing.T) {
		id := func(v int) int { return v }

		assert.True(t, option.Equal(option.Some(5), option.Map(option.Some(5), id)))
		assert.True(t, option.Equal(option.None[int](), option.Map(option.None[int](), id)))
	})

	t.Run("ChangesType", func(t *testing.T) {
		length := option.Map(option.Some("value"), func(s string) int { return len(s) })

		assert.Equal(t, 5, length.MustGet())
	})
}

func TestFlatMap(t *testing.T) {
	keepPositive := func(v int) option.Option[int] {
		if v > 3 {
			return option.Some(v)
		}

		return option.None[int]()
	}

	t.Run("Defined", func(t *testing.T) {
		assert.True(t, option.FlatMap(option.Some(5), keepPositive).IsDefined())
		assert.True(t, option.FlatMap(option.Some(1), keepPositive).IsEmpty())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.True(t, option.FlatMap(option.None[int](), keepPositive).IsEmpty())
	})

	t.Run("NoDoubleWrapping", func(t *testing.T) {
		// Left identity: FlatMap(Some(v), f) == f(v).
		assert.Equal(t, keepPositive(5), option.FlatMap(option.Some(5), keepPositive))
		assert.Equal(t, keepPositive(1), option.FlatMap(option.Some(1), keepPositive))
	})
}

func TestFold(t *testing.T) {
	onEmpty := func() string { return "guest" }
	onDefined := func(name string) string { return "hello " + name }

	assert.Equal(t, "hello user", option.Fold(option.Some("user"), onEmpty, onDefined))
	assert.Equal(t, "guest", option.Fold(option.None[string](), onEmpty, onDefined))
}

func TestEqual(t *testing.T) {
	assert.True(t, option.Equal(option.Some(5), option.Some(5)))
	assert.False(t, option.Equal(option.Some(5), option.Some(7)))
	assert.False(t, option.Equal(option.Some(5), option.None[int]()))
	assert.True(t, option.Equal(option.None[int](), option.None[int]()))
}

func TestContains(t *testing.T) {
	assert.True(t, option.Contains(option.Some(5), 5))
	assert.False(t, option.Contains(option.Some(5), 7))
	assert.False(t, option.Contains(option.None[int](), 5))
}
