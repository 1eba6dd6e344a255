package ui

// ID identifies a widget within the current dialog. Zero is no widget.
type ID uint8

// Context is the focus state of the immediate-mode widgets.
type Context struct {
	Hot    ID
	Active ID

	nextHot ID
}

// FrameInit promotes the previous frame's next hot request. It must run
// before any widget call of a frame.
func (c *Context) FrameInit() {
	c.Hot = c.nextHot
	c.nextHot = 0
}

func (c *Context) SetNextHot(id ID) { c.nextHot = id }

func (c *Context) NextHot() ID { return c.nextHot }

func (c *Context) SetNotActive() { c.Active = 0 }

func (c *Context) SetActive(id ID) { c.Active = id }

// Reset drops all focus. Used when a dialog closes.
func (c *Context) Reset() { *c = Context{} }
