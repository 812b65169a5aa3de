package editor

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/alexisbeaulieu97/gridcraft/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridcraft/internal/logger"
	"github.com/alexisbeaulieu97/gridcraft/internal/ports"
	"github.com/alexisbeaulieu97/gridcraft/internal/preview"
	"github.com/alexisbeaulieu97/gridcraft/internal/render"
)

const (
	// shuffleSpanChance is the probability an item gets a larger span.
	shuffleSpanChance = 0.3
	// shuffleMaxSpan caps shuffled spans on both axes.
	shuffleMaxSpan = 3
)

// Rand is the random source used by Shuffle. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand injects the random source used by Shuffle.
func WithRand(r Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l ports.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// Controller binds the parameter model to a rendering surface and keeps the
// preview in sync. Every entry point runs to completion synchronously and
// ends by re-deriving the preview.
type Controller struct {
	model   *layout.Model
	surface ports.Surface
	rand    Rand
	log     ports.Logger

	sheet    preview.Sheet
	text     string
	previous string
}

// New constructs a controller, seeds the model with defaults and renders
// everything once.
func New(surface ports.Surface, opts ...Option) *Controller {
	c := &Controller{
		model:   layout.NewModel(),
		surface: surface,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.mountAll()
	return c
}

// Container returns the current container configuration.
func (c *Controller) Container() layout.ContainerConfig {
	return c.model.Container()
}

// Items returns the item configurations in visual order.
func (c *Controller) Items() []layout.ItemConfig {
	return c.model.Items()
}

// Selected returns the selected index, or false when there are no items.
func (c *Controller) Selected() (int, bool) {
	return c.model.SelectedIndex()
}

// SelectedItem returns the selected item configuration.
func (c *Controller) SelectedItem() (layout.ItemConfig, bool) {
	return c.model.SelectedItem()
}

// Surface exposes the rendering surface the controller drives.
func (c *Controller) Surface() ports.Surface {
	return c.surface
}

// UpdateContainer is the container-level entry point. The mutation sees a
// copy of the configuration; an item count change rebuilds the boxes.
func (c *Controller) UpdateContainer(mutate func(*layout.ContainerConfig)) {
	cfg := c.model.Container()
	before := cfg.ItemCount
	mutate(&cfg)
	c.model.SetContainer(cfg)

	if c.model.Len() != before || c.surface.Len() != c.model.Len() {
		c.mountAll()
		return
	}
	render.ApplyContainer(c.surface, c.model.Container())
	c.log.Debug(context.Background(), "container updated", "columns", c.model.Container().Columns)
	c.refreshPreview()
}

// SetItemCount rebuilds the item sequence and the boxes.
func (c *Controller) SetItemCount(n int) {
	c.model.SetItemCount(n)
	c.log.Debug(context.Background(), "item count changed", "count", c.model.Len())
	c.mountAll()
}

// Select moves the selection. Styles are untouched; only the preview
// changes.
func (c *Controller) Select(index int) {
	c.model.SetSelectedIndex(index)
	c.refreshPreview()
}

// UpdateSelected is the item-level entry point. Without a selection it only
// refreshes the preview.
func (c *Controller) UpdateSelected(patch layout.ItemPatch) {
	if c.model.UpdateSelectedItem(patch) {
		idx, _ := c.model.SelectedIndex()
		item, _ := c.model.Item(idx)
		render.ApplyItem(c.surface, idx, item)
		c.log.Debug(context.Background(), "item updated", "item", idx+1)
	}
	c.refreshPreview()
}

// Shuffle recolors every item and gives roughly a third of them larger
// spans. Starts reset to auto and self alignment is preserved. Draw order per
// item: hue, span chance, column span, row span.
func (c *Controller) Shuffle() {
	columns := c.model.Container().Columns
	for i, item := range c.model.Items() {
		item.Hue = layout.Palette[c.rand.Intn(len(layout.Palette))]
		item.ColumnStart = layout.AutoKeyword
		item.RowStart = layout.AutoKeyword
		item.ColumnSpan = 1
		item.RowSpan = 1
		if c.rand.Float64() < shuffleSpanChance {
			item.ColumnSpan = c.randomSpan(min(columns, shuffleMaxSpan))
			item.RowSpan = c.randomSpan(shuffleMaxSpan)
		}
		c.model.SetItem(i, item)
		stored, _ := c.model.Item(i)
		render.ApplyItem(c.surface, i, stored)
	}
	c.log.Info(context.Background(), "items shuffled", "count", c.model.Len())
	c.refreshPreview()
}

// Reset restores default container parameters and rebuilds every item.
func (c *Controller) Reset() {
	c.model.Reset()
	c.log.Info(context.Background(), "editor reset")
	c.mountAll()
}

// Preview returns the most recently derived preview.
func (c *Controller) Preview() preview.Sheet {
	return c.sheet
}

// PreviewText returns the preview as CSS text.
func (c *Controller) PreviewText() string {
	return c.text
}

// ChangedLines reports which preview lines changed in the last refresh.
func (c *Controller) ChangedLines() map[int]bool {
	return preview.ChangedLines(c.previous, c.text)
}

func (c *Controller) randomSpan(limit int) int {
	span := int(math.Ceil(c.rand.Float64() * float64(limit)))
	return max(1, min(span, limit))
}

// mountAll rebuilds the boxes from the model and re-applies every style.
func (c *Controller) mountAll() {
	c.surface.Mount(c.model.Len())
	for i, item := range c.model.Items() {
		render.ApplyItem(c.surface, i, item)
	}
	render.ApplyContainer(c.surface, c.model.Container())
	c.refreshPreview()
}

func (c *Controller) refreshPreview() {
	idx, ok := c.model.SelectedIndex()
	c.sheet = preview.Read(c.surface, preview.Selection{Index: idx, Valid: ok})
	c.previous = c.text
	c.text = c.sheet.String()
}
