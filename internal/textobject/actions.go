package textobject

// CollapseToFront moves the cursor to the start of the active selection
// and deactivates it. A no-op when no selection is active.
func CollapseToFront(c Cursor) {
	sel, ok := Selection(c)
	if !ok {
		return
	}
	c.SetPoint(sel.Start)
	c.SetMark(sel.Start)
	c.DeactivateSelection()
}

// CollapseToBack moves the cursor to the end of the active selection and
// deactivates it. A no-op when no selection is active.
func CollapseToBack(c Cursor) {
	sel, ok := Selection(c)
	if !ok {
		return
	}
	c.SetPoint(sel.End)
	c.SetMark(sel.End)
	c.DeactivateSelection()
}
