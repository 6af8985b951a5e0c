package observable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mytab/internal/domain/observable"
)

type item struct {
	Name string
}

func TestCell_SetNotifiesOnlyOnChange(t *testing.T) {
	c := observable.NewCell(1)

	var seen []int
	c.Subscribe(func(v int) { seen = append(seen, v) })

	assert.False(t, c.Set(1))
	assert.True(t, c.Set(2))
	assert.True(t, c.Set(3))

	assert.Equal(t, []int{2, 3}, seen)
	assert.Equal(t, 3, c.Get())
}

func TestCell_DeepChangeOfElementIsObserved(t *testing.T) {
	c := observable.NewCell([]item{{Name: "a"}}, observable.WithClone(observable.CloneSlice[item]))

	calls := 0
	c.Subscribe(func([]item) { calls++ })

	changed := c.Update(func(items []item) []item {
		items[0].Name = "b"
		return items
	})

	assert.True(t, changed)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "b", c.Get()[0].Name)
}

func TestCell_GetReturnsCopy(t *testing.T) {
	c := observable.NewCell([]item{{Name: "a"}}, observable.WithClone(observable.CloneSlice[item]))

	got := c.Get()
	got[0].Name = "mutated"

	assert.Equal(t, "a", c.Get()[0].Name)
}

func TestCell_EqualSliceIsNotAChange(t *testing.T) {
	c := observable.NewCell([]string{"a", "b"}, observable.WithClone(observable.CloneSlice[string]))

	calls := 0
	c.Subscribe(func([]string) { calls++ })

	assert.False(t, c.Set([]string{"a", "b"}))
	assert.Equal(t, 0, calls)
}

func TestCell_SubscribersRunInOrderAndUnsubscribe(t *testing.T) {
	c := observable.NewCell("")

	var order []string
	c.Subscribe(func(string) { order = append(order, "first") })
	unsub := c.Subscribe(func(string) { order = append(order, "second") })
	c.Subscribe(func(string) { order = append(order, "third") })

	c.Set("x")
	require.Equal(t, []string{"first", "second", "third"}, order)

	unsub()
	unsub()
	order = nil
	c.Set("y")
	assert.Equal(t, []string{"first", "third"}, order)
}

func TestCell_SubscriberMayReadCell(t *testing.T) {
	c := observable.NewCell(0)

	var observed int
	c.Subscribe(func(int) { observed = c.Get() })

	c.Set(7)
	assert.Equal(t, 7, observed)
}
