package pagedlist

import "context"

// SlotKind describes what a renderable slot shows.
type SlotKind int

const (
	// SlotNone is returned for indexes outside the renderable range.
	SlotNone SlotKind = iota
	// SlotItem is a loaded item.
	SlotItem
	// SlotLoading is the loading indicator shown while the next page is fetched.
	SlotLoading
	// SlotError is the error indicator shown after a failed fetch.
	SlotError
)

func (k SlotKind) String() string {
	switch k {
	case SlotItem:
		return "item"
	case SlotLoading:
		return "loading"
	case SlotError:
		return "error"
	default:
		return "none"
	}
}

// Slot is the render decision for a single position in the list.
type Slot[T any] struct {
	Index int
	Kind  SlotKind
	// Item is only set when Kind is SlotItem.
	Item T
}

// Slot returns the render decision for index without side effects.
func (c *Controller[P, T]) Slot(index int) Slot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	slot := Slot[T]{Index: index}
	switch {
	case index < 0 || index >= c.state.renderableCount():
		slot.Kind = SlotNone
	case index < len(c.state.Items):
		slot.Kind = SlotItem
		slot.Item = c.state.Items[index]
	case c.state.HasError:
		slot.Kind = SlotError
	default:
		slot.Kind = SlotLoading
	}
	return slot
}

// Builder builds the views of a list. It is implemented by the presentation layer.
type Builder[T any] interface {
	Empty()
	Item(index int, item T)
	Loading(index int)
	Error(index int, err error)
}

// Render builds the visible slots first through last (inclusive). When the
// list is known to be empty only Builder.Empty is called. Every built slot is
// reported through OnSlotRequested first, so rendering the first unloaded slot
// starts the next fetch.
func (c *Controller[P, T]) Render(ctx context.Context, b Builder[T], first, last int) {
	if c.IsEmpty() {
		b.Empty()
		return
	}

	if first < 0 {
		first = 0
	}
	if n := c.RenderableCount(); last >= n {
		last = n - 1
	}

	for i := first; i <= last; i++ {
		c.OnSlotRequested(ctx, i)

		slot := c.Slot(i)
		switch slot.Kind {
		case SlotItem:
			b.Item(i, slot.Item)
		case SlotLoading:
			b.Loading(i)
		case SlotError:
			b.Error(i, c.lastErr())
		}
	}
}

func (c *Controller[P, T]) lastErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Err
}
