package ui

// Header shows a collapsible section header, returning whether the
// section is expanded. The current layout is re-applied afterwards
// because the backend resets it when a header collapses its section.
func (c *Context) Header(label string) bool {
	c.sanityCheck()

	open := c.drv.Header(label)
	c.updateLayout()
	return open
}

// Label shows a single line of text.
func (c *Context) Label(text string) {
	c.sanityCheck()
	c.drv.Label(text)
}

// Paragraph shows a wrapped block of text.
func (c *Context) Paragraph(text string) {
	c.sanityCheck()
	c.drv.Text(text)
}

// Button shows a button, returning whether it was clicked this frame.
func (c *Context) Button(text string) bool {
	c.sanityCheck()
	return c.drv.Button(text)
}

// ButtonLabeled shows a label and a button on a two-column row,
// returning whether the button was clicked this frame.
func (c *Context) ButtonLabeled(label, text string) bool {
	c.sanityCheck()

	c.EnterColumn()
	c.twoColumnLayout()

	c.drv.Label(label)
	res := c.Button(text)

	c.LeaveColumn()
	return res
}

// Checkbox shows a checkbox with inline text, returning the new value.
func (c *Context) Checkbox(text string, value bool) bool {
	c.sanityCheck()
	return c.drv.Checkbox(text, value)
}

// CheckboxLabeled shows a label and a checkbox on a two-column row,
// returning the new value.
func (c *Context) CheckboxLabeled(label, text string, value bool) bool {
	c.sanityCheck()

	c.EnterColumn()
	c.twoColumnLayout()

	c.drv.Label(label)
	res := c.Checkbox(text, value)

	c.LeaveColumn()
	return res
}

// Slider shows a slider over [min, max], returning the new value.
func (c *Context) Slider(value, min, max float64) float64 {
	c.sanityCheck()
	return c.drv.Slider(value, min, max)
}

// SliderLabeled shows a label and a slider on a two-column row,
// returning the new value.
func (c *Context) SliderLabeled(label string, value, min, max float64) float64 {
	c.sanityCheck()

	c.EnterColumn()
	c.twoColumnLayout()

	c.drv.Label(label)
	res := c.Slider(value, min, max)

	c.LeaveColumn()
	return res
}

// NumberBox shows a numeric entry that steps by step, returning the
// new value.
func (c *Context) NumberBox(value, step float64) float64 {
	c.sanityCheck()
	return c.drv.Number(value, step)
}

// NumberBoxLabeled shows a label and a numeric entry on a two-column
// row, returning the new value.
func (c *Context) NumberBoxLabeled(label string, value, step float64) float64 {
	c.sanityCheck()

	c.EnterColumn()
	c.twoColumnLayout()

	c.drv.Label(label)
	res := c.NumberBox(value, step)

	c.LeaveColumn()
	return res
}

// TextBox shows a single-line text entry, returning the new value.
func (c *Context) TextBox(value string) string {
	c.sanityCheck()
	return c.drv.TextBox(value)
}

// TextBoxLabeled shows a label and a text entry on a two-column row,
// returning the new value.
func (c *Context) TextBoxLabeled(label, value string) string {
	c.sanityCheck()

	c.EnterColumn()
	c.twoColumnLayout()

	c.drv.Label(label)
	res := c.TextBox(value)

	c.LeaveColumn()
	return res
}

// LastChanged reports whether the last widget's value changed this
// frame.
func (c *Context) LastChanged() bool {
	return c.drv.Changed()
}

// LastConfirmed reports whether the last widget's value was confirmed,
// for example by pressing enter in a text box.
func (c *Context) LastConfirmed() bool {
	return c.drv.Confirmed()
}
