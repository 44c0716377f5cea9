package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd_DistinctProductsSumInCount(t *testing.T) {
	var c Cart
	c = Add(c, "a", 1)
	c = Add(c, "b", 4)
	c = Add(c, "c", 2)

	assert.Len(t, c.Lines, 3)
	assert.Equal(t, 7, c.Count())
}

func TestAdd_SameProductCoalesces(t *testing.T) {
	c := Add(Add(Cart{}, "p", 2), "p", 5)

	assert.Equal(t, []Line{{ProductID: "p", Qty: 7}}, c.Lines)
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	orig := Cart{Lines: []Line{{ProductID: "p", Qty: 1}}}
	_ = Add(orig, "p", 3)

	assert.Equal(t, 1, orig.Lines[0].Qty)
}

func TestSetQuantity_FloorsAtOne(t *testing.T) {
	base := Cart{Lines: []Line{{ProductID: "p", Qty: 4}}}

	for _, q := range []int{0, -5} {
		c, ok := SetQuantity(base, "p", q)
		assert.True(t, ok)
		assert.Equal(t, []Line{{ProductID: "p", Qty: 1}}, c.Lines, "qty %d", q)
	}

	c, ok := SetQuantity(base, "p", 9)
	assert.True(t, ok)
	assert.Equal(t, 9, c.Lines[0].Qty)
}

func TestSetQuantity_MissingIsNoop(t *testing.T) {
	base := Cart{Lines: []Line{{ProductID: "p", Qty: 4}}}

	c, ok := SetQuantity(base, "q", 2)
	assert.False(t, ok)
	assert.Equal(t, base, c)
}

func TestSetQuantity_ChangesFirstDuplicateOnly(t *testing.T) {
	base := Cart{Lines: []Line{{"p", 1}, {"p", 2}}}

	c, _ := SetQuantity(base, "p", 5)
	assert.Equal(t, []Line{{"p", 5}, {"p", 2}}, c.Lines)
}

func TestRemove_AllMatchingLines(t *testing.T) {
	base := Cart{Lines: []Line{{"p", 1}, {"q", 3}, {"p", 2}}}

	c, ok := Remove(base, "p")
	assert.True(t, ok)
	assert.Equal(t, []Line{{"q", 3}}, c.Lines)
}

func TestRemove_NoMatch(t *testing.T) {
	c, ok := Remove(Cart{}, "p")
	assert.False(t, ok)
	assert.True(t, c.Empty())

	base := Cart{Lines: []Line{{"q", 3}}}
	c, ok = Remove(base, "p")
	assert.False(t, ok)
	assert.Equal(t, base, c)
}

func TestParseQuantity(t *testing.T) {
	cases := map[string]int{
		"3":   3,
		" 7 ": 7,
		"":    1,
		"abc": 1,
		"0":   1,
		"-2":  -2,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseQuantity(in), "input %q", in)
	}
}
