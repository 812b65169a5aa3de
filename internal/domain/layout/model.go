package layout

// Model is the single source of truth for the container and its items.
// It is not safe for concurrent use; every mutation runs on the event loop.
type Model struct {
	container ContainerConfig
	items     []ItemConfig
	selected  int
}

// NewModel returns a model seeded with the default container and items.
func NewModel() *Model {
	m := &Model{}
	m.Reset()
	return m
}

// Reset restores default container parameters and rebuilds the items.
func (m *Model) Reset() {
	m.container = DefaultContainer()
	m.items = buildItems(m.container.ItemCount)
	m.selected = 0
}

// Container returns a copy of the container configuration.
func (m *Model) Container() ContainerConfig {
	return m.container
}

// SetContainer replaces the container configuration wholesale. A changed
// item count rebuilds the item sequence.
func (m *Model) SetContainer(cfg ContainerConfig) {
	cfg = cfg.Normalize()
	count := cfg.ItemCount
	cfg.ItemCount = m.container.ItemCount
	m.container = cfg
	if count != len(m.items) {
		m.SetItemCount(count)
	}
}

// SetItemCount rebuilds the item sequence with n default items. Placement
// edits on previous items are discarded.
func (m *Model) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	m.items = buildItems(n)
	m.container.ItemCount = n
	m.selected = clampIndex(m.selected, n)
}

// Len reports the number of items.
func (m *Model) Len() int {
	return len(m.items)
}

// Items returns a copy of the item sequence in visual order.
func (m *Model) Items() []ItemConfig {
	out := make([]ItemConfig, len(m.items))
	copy(out, m.items)
	return out
}

// Item returns the item at index.
func (m *Model) Item(index int) (ItemConfig, bool) {
	if index < 0 || index >= len(m.items) {
		return ItemConfig{}, false
	}
	return m.items[index], true
}

// SetItem replaces the item at index. Out-of-range indexes are ignored.
func (m *Model) SetItem(index int, item ItemConfig) bool {
	if index < 0 || index >= len(m.items) {
		return false
	}
	m.items[index] = item.Sanitize()
	return true
}

// SelectedIndex returns the selected position, or false when there are no
// items.
func (m *Model) SelectedIndex() (int, bool) {
	if len(m.items) == 0 {
		return 0, false
	}
	return m.selected, true
}

// SetSelectedIndex moves the selection, clamped to the item range.
func (m *Model) SetSelectedIndex(index int) {
	m.selected = clampIndex(index, len(m.items))
}

// SelectedItem returns the selected item, if any.
func (m *Model) SelectedItem() (ItemConfig, bool) {
	idx, ok := m.SelectedIndex()
	if !ok {
		return ItemConfig{}, false
	}
	return m.items[idx], true
}

// UpdateSelectedItem merges a patch into the selected item. It reports false
// and changes nothing when there is no selection.
func (m *Model) UpdateSelectedItem(p ItemPatch) bool {
	idx, ok := m.SelectedIndex()
	if !ok {
		return false
	}
	m.items[idx] = m.items[idx].Apply(p)
	return true
}

func buildItems(n int) []ItemConfig {
	items := make([]ItemConfig, n)
	for i := range items {
		items[i] = NewItem(i)
	}
	return items
}

func clampIndex(index, length int) int {
	if length == 0 || index < 0 {
		return 0
	}
	if index >= length {
		return length - 1
	}
	return index
}
