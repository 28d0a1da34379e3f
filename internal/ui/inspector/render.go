package inspector

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/textscope/internal/textobject"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.viewport.View() + "\n" + m.statusBar() + "\n" + m.helpLine()
}

// syncViewport re-renders buffer content into the viewport and keeps the
// cursor line visible.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderContent())

	line := m.cursorLine()
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// cursorLine returns the zero-based line number of point.
func (m Model) cursorLine() int {
	return strings.Count(m.buf.Slice(0, m.cur.Point()), "\n")
}

// renderContent renders the whole buffer with selection and cursor styling.
func (m Model) renderContent() string {
	text := m.buf.Slice(0, m.buf.Len())
	lines := strings.Split(text, "\n")
	sel, hasSel := textobject.Selection(m.cur)

	var b strings.Builder
	off := 0
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.renderLine(line, off, sel, hasSel))
		off += len([]rune(line)) + 1
	}
	return b.String()
}

// renderLine styles one line. The cursor cell wins over the selection
// background so point stays visible inside a selection.
func (m Model) renderLine(line string, off int, sel textobject.Range, hasSel bool) string {
	runes := []rune(line)
	point := m.cur.Point()

	var b strings.Builder
	for i, r := range runes {
		pos := off + i
		cell := m.expandRune(r)
		switch {
		case pos == point:
			b.WriteString(m.cursorStyle.Render(cell))
		case hasSel && sel.Contains(pos):
			b.WriteString(m.selStyle.Render(cell))
		default:
			b.WriteString(cell)
		}
	}
	// Point sitting on the newline (or buffer end) renders as a phantom
	// cell past the last rune.
	if point == off+len(runes) {
		b.WriteString(m.cursorStyle.Render(" "))
	}
	return b.String()
}

// expandRune converts a rune to its display cells, expanding tabs.
func (m Model) expandRune(r rune) string {
	if r == '\t' {
		width := m.cfg.TabWidth
		if width <= 0 {
			width = 4
		}
		return strings.Repeat(" ", width)
	}
	return string(r)
}

// statusBar shows the file, point, selection, last operation, and errors.
func (m Model) statusBar() string {
	var parts []string
	parts = append(parts, m.path)
	parts = append(parts, fmt.Sprintf("point=%d", m.cur.Point()))
	if sel, ok := textobject.Selection(m.cur); ok {
		parts = append(parts, fmt.Sprintf("sel=[%d,%d)", sel.Start, sel.End))
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}

	text := strings.Join(parts, " | ")
	if m.errMsg != "" {
		return m.errStyle.Render(fitWidth(text+" · "+m.errMsg, m.width))
	}
	return m.subtleStyle.Render(fitWidth(text, m.width))
}

func (m Model) helpLine() string {
	help := "hjkl move · w/W/e/E/s/p/B/t/,/f select · i/a+delim pairs · T trim · ;/: collapse · q quit"
	return m.subtleStyle.Render(fitWidth(help, m.width))
}

// fitWidth truncates s to the terminal width, counting display cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
