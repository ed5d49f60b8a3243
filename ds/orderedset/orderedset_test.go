package orderedset_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pizzatime/orderform/ds/orderedset"
)

func TestOrderedSet_New(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{name: "empty", input: nil, expected: []int{}},
		{name: "single", input: []int{7}, expected: []int{7}},
		{name: "unique", input: []int{3, 1, 2}, expected: []int{3, 1, 2}},
		{name: "duplicates", input: []int{1, 2, 1, 3, 2, 4}, expected: []int{1, 2, 3, 4}},
		{name: "all equal", input: []int{5, 5, 5}, expected: []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := orderedset.New(tt.input...)

			require.Equal(t, tt.expected, set.ToSlice())
			require.Equal(t, len(tt.expected), set.Size(), "wrong size")
			require.Equal(t, len(tt.expected) == 0, set.IsEmpty())
		})
	}
}

func TestOrderedSet_Has(t *testing.T) {
	set := initSet(3, 0)

	require.True(t, set.Has("item0"), "the element should exist")
	require.True(t, set.Has("item2"), "the element should exist")
	require.False(t, set.Has("item3"), "the element should not exist")
	require.True(t, set.Has("item2"), "repeated calls should yield the same result")
}

func TestOrderedSet_ToSliceIsACopy(t *testing.T) {
	set := orderedset.New(1, 2, 3)

	slice := set.ToSlice()
	slice[0] = 42
	_ = append(slice[:1], 99)

	require.Equal(t, []int{1, 2, 3}, set.ToSlice())
	require.False(t, set.Has(42))
	require.False(t, set.Has(99))
}

func TestOrderedSet_With(t *testing.T) {
	set := orderedset.New(1, 2, 3)

	require.Equal(t, []int{1, 2, 3}, set.With(2).ToSlice(), "adding a present element should be a no-op")
	require.Equal(t, []int{1, 2, 3, 4}, set.With(4).ToSlice())
	require.Equal(t, []int{1, 2, 3}, set.ToSlice(), "the original set should not change")
	require.Equal(t, []int{9}, orderedset.New[int]().With(9).ToSlice())
}

func TestOrderedSet_Without(t *testing.T) {
	set := orderedset.New(1, 2, 3)

	require.Equal(t, []int{1, 3}, set.Without(2).ToSlice())
	require.Equal(t, []int{1, 2, 3}, set.Without(4).ToSlice())
	require.True(t, set.Without(1).Without(2).Without(3).IsEmpty())
	require.Equal(t, []int{1, 2, 3}, set.ToSlice(), "the original set should not change")
}

func TestOrderedSet_ToNonEmpty(t *testing.T) {
	nonEmpty, ok := orderedset.New(4, 5).ToNonEmpty()
	require.True(t, ok)
	require.Equal(t, 4, nonEmpty.Head())
	require.Equal(t, []int{5}, nonEmpty.Tail())

	nonEmpty, ok = orderedset.New[int]().ToNonEmpty()
	require.False(t, ok)
	require.Nil(t, nonEmpty)
}

func TestOrderedSet_Intersect(t *testing.T) {
	set := initSet(5, 0)
	set2 := initSet(5, 3)

	require.Equal(t, []string{"item3", "item4"}, set.Intersect(set2).ToSlice(), "wrong intersection")
	require.Equal(t, []string{"item3", "item4"}, set2.Intersect(set).ToSlice(), "wrong intersection")
	require.True(t, set.Intersect(orderedset.New[string]()).IsEmpty())
}

func TestOrderedSet_Filter(t *testing.T) {
	set := initSet(5, 0)

	require.True(t, set.Filter(func(elem string) bool { return elem[4:] == "3" }).Is("item3"), "wrong filter result")
}

func TestOrderedSet_HasAll(t *testing.T) {
	set := initSet(3, 0)

	require.True(t, set.HasAll(initSet(2, 1)), "all elements should exist")
	require.False(t, set.HasAll(initSet(2, 2)), "item3 should not exist")
	require.True(t, set.HasAll(orderedset.New[string]()))
}

func TestOrderedSet_Equals(t *testing.T) {
	require.True(t, orderedset.New(1, 2, 3).Equals(orderedset.New(1, 2, 3)))
	require.True(t, orderedset.New(1, 2, 3).Equals(orderedset.NewNonEmpty(1, 2, 3)))
	require.False(t, orderedset.New(1, 2, 3).Equals(orderedset.New(3, 2, 1)), "order matters")
	require.False(t, orderedset.New(1, 2).Equals(orderedset.New(1, 2, 3)))
	require.False(t, orderedset.New(1, 2).Equals(nil))
}

func TestOrderedSet_ForEach(t *testing.T) {
	set := orderedset.New(1, 2, 3, 4)

	visited := make([]int, 0)
	err := set.ForEach(func(element int) error {
		visited = append(visited, element)

		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, visited)

	visited = visited[:0]
	err = set.ForEach(func(element int) error {
		if element == 3 {
			return orderedset.ErrElementNotFound
		}
		visited = append(visited, element)

		return nil
	})
	require.ErrorIs(t, err, orderedset.ErrElementNotFound)
	require.Equal(t, []int{1, 2}, visited)
}

func TestOrderedSet_RangeAndString(t *testing.T) {
	set := initSet(3, 0)

	str := set.String()
	set.Range(func(element string) {
		require.Contains(t, str, element)
	})
	require.Equal(t, "ints(3, 1, 2)", orderedset.New(3, 1, 2).String())
}

func TestOrderedSet_Iterator(t *testing.T) {
	set := orderedset.New(3, 1, 2)
	setWalker := set.Iterator()

	visited := make([]int, 0)
	for setWalker.HasNext() {
		visited = append(visited, setWalker.Next())
	}

	require.Equal(t, []int{3, 1, 2}, visited)
}

func initSet(itemCount, offset int) orderedset.OrderedSet[string] {
	elements := make([]string, 0, itemCount)
	for i := offset; i < offset+itemCount; i++ {
		elements = append(elements, fmt.Sprintf("item%d", i))
	}

	return orderedset.New(elements...)
}
