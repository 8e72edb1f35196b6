package seq

import (
	"strings"
	"testing"

	"github.com/npillmayer/expanse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(i int) bool { return i%2 == 0 }

func TestFirstIndex(t *testing.T) {
	assert.Equal(t, 1, FirstIndex([]int{1, 2, 3, 4}, isEven))
	assert.Equal(t, -1, FirstIndex([]int{1, 3}, isEven))
	assert.Equal(t, -1, FirstIndex(nil, isEven))
}

func TestLast(t *testing.T) {
	v, err := Last([]int{1, 2, 3, 4, 5}, isEven)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = Last([]int{}, isEven)
	assert.ErrorIs(t, err, expanse.ErrNoMatch)
	_, err = Last([]int{1, 3}, isEven)
	assert.ErrorIs(t, err, expanse.ErrNoMatch)

	assert.Equal(t, -1, LastOr([]int{1, 3}, isEven, -1))
	assert.Equal(t, 2, LastOr([]int{2, 3}, isEven, -1))
}

func TestAddUnique(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	var s []int
	assert.True(t, AddUnique(&s, 3, eq))
	assert.True(t, AddUnique(&s, 1, eq))
	assert.False(t, AddUnique(&s, 3, eq))
	assert.Equal(t, []int{3, 1}, s)
	assert.True(t, Contains(s, 1, eq))
	assert.False(t, Contains(s, 2, eq))
}

func TestSplit(t *testing.T) {
	isComma := func(r rune) bool { return r == ',' }
	runes := []rune("a,,bc,")
	runs := Split(runes, isComma, false)
	require.Len(t, runs, 4)
	assert.Equal(t, "a", string(runs[0]))
	assert.Equal(t, "", string(runs[1]))
	assert.Equal(t, "bc", string(runs[2]))
	assert.Equal(t, "", string(runs[3]))

	runs = Split(runes, isComma, true)
	require.Len(t, runs, 2)
	assert.Equal(t, "a", string(runs[0]))
	assert.Equal(t, "bc", string(runs[1]))

	runs = Split([]rune(",x"), isComma, true)
	require.Len(t, runs, 1)
	assert.Equal(t, "x", string(runs[0]))
}

func TestSplitRunsDoNotClobber(t *testing.T) {
	s := []int{1, 0, 2}
	runs := Split(s, func(i int) bool { return i == 0 }, false)
	require.Len(t, runs, 2)
	_ = append(runs[0], 99)
	assert.Equal(t, []int{1, 0, 2}, s)
}

func TestEqualByKey(t *testing.T) {
	eq := EqualByKey(func(r record) int { return r.id })
	assert.True(t, eq(record{id: 1, name: "a"}, record{id: 1, name: "b"}))
	assert.False(t, eq(record{id: 1}, record{id: 2}))

	fold := EqualByKeyFunc(func(r record) string { return r.name }, strings.EqualFold)
	assert.True(t, fold(record{name: "Ab"}, record{name: "aB"}))

	var rr []record
	assert.True(t, AddUnique(&rr, record{id: 1, name: "a"}, eq))
	assert.False(t, AddUnique(&rr, record{id: 1, name: "b"}, eq))
}

func TestNilSafe(t *testing.T) {
	calls := 0
	eq := NilSafe(func(a, b *record) bool {
		calls++
		return a.id == b.id
	})
	assert.True(t, eq(nil, nil))
	assert.False(t, eq(nil, &record{}))
	assert.False(t, eq(&record{}, nil))
	assert.Equal(t, 0, calls)
	assert.True(t, eq(&record{id: 2}, &record{id: 2}))
	assert.Equal(t, 1, calls)
}
