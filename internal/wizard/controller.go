package wizard

import (
	"github.com/gedeon/andikacv/internal/types"
)

// updateBuffer bounds the pending-update queue. Editors and controller run
// on the same goroutine, so the buffer only ever holds updates emitted
// between two ProcessPending calls.
const updateBuffer = 64

// Controller sequences the wizard steps and owns the aggregate document.
// Editors push SectionUpdate messages through the controller's Notify; the
// controller applies them in emission order, each one replacing that
// section's payload wholesale (last write wins).
type Controller struct {
	steps   []types.Section
	current int
	doc     types.WizardDocument
	preview bool
	pending chan SectionUpdate
}

// NewController builds a controller positioned at the first step with an
// empty document.
func NewController() *Controller {
	return &Controller{
		steps:   types.Sections(),
		pending: make(chan SectionUpdate, updateBuffer),
	}
}

// Steps returns the step sequence.
func (c *Controller) Steps() []types.Section {
	out := make([]types.Section, len(c.steps))
	copy(out, c.steps)
	return out
}

// CurrentStep returns the current step index and its section.
func (c *Controller) CurrentStep() (int, types.Section) {
	return c.current, c.steps[c.current]
}

// Advance moves to the next step. At the last step it is a no-op; there is
// no wraparound and no error.
func (c *Controller) Advance() {
	if c.current < len(c.steps)-1 {
		c.current++
	}
}

// Retreat moves to the previous step. At the first step it is a no-op.
func (c *Controller) Retreat() {
	if c.current > 0 {
		c.current--
	}
}

// JumpToStep moves directly to any valid step index. Prior steps need not
// be complete; out-of-range indexes are ignored.
func (c *Controller) JumpToStep(index int) {
	if index >= 0 && index < len(c.steps) {
		c.current = index
	}
}

// MergeSectionData replaces the named section's payload wholesale.
func (c *Controller) MergeSectionData(section types.Section, payload any) {
	c.doc.Merge(section, payload)
}

// Notify returns the callback editors use to push updates. Updates queue
// until ProcessPending applies them; when the queue is full the backlog is
// applied inline first so no update is ever dropped.
func (c *Controller) Notify() Notify {
	return func(u SectionUpdate) {
		for {
			select {
			case c.pending <- u:
				return
			default:
				c.ProcessPending()
			}
		}
	}
}

// ProcessPending applies every queued editor update in emission order and
// returns the number applied.
func (c *Controller) ProcessPending() int {
	applied := 0
	for {
		select {
		case u := <-c.pending:
			c.doc.Merge(u.Section, u.Payload)
			applied++
		default:
			return applied
		}
	}
}

// EnterPreview switches to preview mode.
func (c *Controller) EnterPreview() {
	c.preview = true
}

// ExitPreview switches back to edit mode.
func (c *Controller) ExitPreview() {
	c.preview = false
}

// InPreview reports whether the wizard is in preview mode.
func (c *Controller) InPreview() bool {
	return c.preview
}

// Document returns a deep copy of the aggregate document. Queued editor
// updates are applied first so the copy reflects every emit so far.
func (c *Controller) Document() types.WizardDocument {
	c.ProcessPending()
	return c.doc.Clone()
}

// SectionData returns a copy of the named section's current payload, with
// queued editor updates applied first.
func (c *Controller) SectionData(section types.Section) any {
	c.ProcessPending()
	return c.doc.SectionData(section)
}
