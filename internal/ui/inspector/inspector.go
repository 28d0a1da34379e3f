// Package inspector provides an interactive viewer for text-object
// selections: a read-only buffer view where motion keys move point and
// object keys run selectors, with the resulting range highlighted.
package inspector

import (
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/textscope/internal/config"
	"github.com/zjrosen/textscope/internal/log"
	"github.com/zjrosen/textscope/internal/textobject"
)

// FileChangedMsg signals that the inspected file changed on disk.
type FileChangedMsg struct{}

// opKeys maps plain object keys to registry operation names.
var opKeys = map[string]string{
	"w": "word",
	"W": "space",
	"e": "line",
	"E": "line-nl",
	"s": "sentence",
	"p": "paragraph",
	"B": "buffer",
	"t": "indent",
	",": "argument",
	"f": "function",
}

// pendingOps maps the key following an i/a prefix to the delimiter family.
var pendingOps = map[string]string{
	"(": "paren", ")": "paren",
	"[": "bracket", "]": "bracket",
	"{": "brace", "}": "brace",
	"<": "angle", ">": "angle",
	`"`: "string", "'": "string",
	"b": "any",
}

// Model is the inspector's bubbletea model.
type Model struct {
	path    string
	cfg     config.Config
	changes <-chan struct{}

	buf    *textobject.StringBuffer
	cur    *textobject.State
	engine *textobject.Engine

	viewport viewport.Model
	ready    bool
	width    int
	height   int

	// pending holds an "i" or "a" prefix awaiting its delimiter key.
	pending string
	status  string
	errMsg  string

	cursorStyle lipgloss.Style
	selStyle    lipgloss.Style
	subtleStyle lipgloss.Style
	errStyle    lipgloss.Style
}

// New creates an inspector over text loaded from path. changes may be nil
// when auto-reload is disabled.
func New(path, text string, cfg config.Config, changes <-chan struct{}) Model {
	buf := textobject.NewStringBuffer(text)
	return Model{
		path:        path,
		cfg:         cfg,
		changes:     changes,
		buf:         buf,
		cur:         textobject.NewState(0),
		engine:      newEngine(buf, cfg),
		status:      "ready",
		cursorStyle: lipgloss.NewStyle().Reverse(true),
		selStyle:    lipgloss.NewStyle().Background(lipgloss.Color(cfg.Theme.Selection)),
		subtleStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Subtle)),
		errStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.Error)),
	}
}

func newEngine(buf textobject.Buffer, cfg config.Config) *textobject.Engine {
	return textobject.New(buf, textobject.WithClassifier(textobject.DefaultClassifier{
		WordRunes:           cfg.WordChars,
		SentenceTerminators: cfg.SentenceTerminators,
	}))
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange blocks on the watcher channel and resurfaces as a message.
func (m Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; ok {
			return FileChangedMsg{}
		}
		return nil
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.update(msg)
}

// update is the typed update loop; tests drive it directly.
func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - 2 // status bar and help line
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.syncViewport()
		return m, nil

	case FileChangedMsg:
		m = m.reload()
		return m, m.waitForChange()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.pending = ""
		m.cur.DeactivateSelection()
		m.status = "selection cleared"
		m.errMsg = ""
		m.syncViewport()
		return m, nil
	case "r":
		m = m.reload()
		return m, nil
	}

	if m.pending != "" {
		prefix := m.pending
		m.pending = ""
		family, ok := pendingOps[key]
		if !ok {
			m.errMsg = "no delimiter object for key " + key
			return m, nil
		}
		variant := "outer"
		if prefix == "i" {
			variant = "inner"
		}
		m = m.runOp(variant + "-" + family)
		return m, nil
	}

	switch key {
	case "i", "a":
		m.pending = key
		m.status = key + " — awaiting delimiter"
		return m, nil
	case "left", "h":
		m.movePoint(-1)
	case "right", "l":
		m.movePoint(1)
	case "up", "k":
		m.moveLine(-1)
	case "down", "j":
		m.moveLine(1)
	case "0":
		m.setPoint(m.buf.LineStart(m.cur.Point()))
	case "$":
		m.setPoint(m.buf.LineEnd(m.cur.Point()))
	case "g":
		m.setPoint(0)
	case "G":
		m.setPoint(m.buf.Len())
	case "T":
		_ = m.engine.TrimSelection(m.cur)
		m.status = "trim"
	case ";":
		textobject.CollapseToFront(m.cur)
		m.status = "collapse front"
	case ":":
		textobject.CollapseToBack(m.cur)
		m.status = "collapse back"
	default:
		if name, ok := opKeys[key]; ok {
			m = m.runOp(name)
			return m, nil
		}
	}
	m.syncViewport()
	return m, nil
}

// runOp resolves name in the selector registry and applies it.
func (m Model) runOp(name string) Model {
	op, ok := textobject.Lookup(name)
	if !ok {
		m.errMsg = "unknown operation " + name
		return m
	}
	if err := op(m.engine, m.cur); err != nil {
		m.errMsg = err.Error()
		m.status = name + " failed"
		log.Debug(log.CatEngine, "selection failed", "op", name, "point", m.cur.Point(), "err", err)
	} else {
		m.errMsg = ""
		sel, _ := textobject.Selection(m.cur)
		m.status = name
		log.Debug(log.CatEngine, "selection", "op", name, "start", sel.Start, "end", sel.End)
	}
	m.syncViewport()
	return m
}

// reload re-reads the file and rebuilds buffer and engine, clamping point.
func (m Model) reload() Model {
	data, err := os.ReadFile(m.path)
	if err != nil {
		m.errMsg = err.Error()
		log.ErrorErr(log.CatUI, "reload failed", err, "path", m.path)
		return m
	}
	m.buf = textobject.NewStringBuffer(string(data))
	m.engine = newEngine(m.buf, m.cfg)
	point := m.cur.Point()
	if point > m.buf.Len() {
		point = m.buf.Len()
	}
	m.cur = textobject.NewState(point)
	m.status = "reloaded"
	m.errMsg = ""
	log.Info(log.CatUI, "buffer reloaded", "path", m.path, "len", m.buf.Len())
	m.syncViewport()
	return m
}

func (m *Model) movePoint(delta int) {
	m.setPoint(m.cur.Point() + delta)
}

func (m *Model) setPoint(off int) {
	if off < 0 {
		off = 0
	}
	if off > m.buf.Len() {
		off = m.buf.Len()
	}
	m.cur.SetPoint(off)
	m.cur.DeactivateSelection()
	m.errMsg = ""
}

// moveLine moves point one line up or down, keeping the column when the
// target line is long enough.
func (m *Model) moveLine(delta int) {
	p := m.cur.Point()
	ls := m.buf.LineStart(p)
	col := p - ls

	var target int
	if delta < 0 {
		if ls == 0 {
			return
		}
		target = m.buf.LineStart(ls - 1)
	} else {
		le := m.buf.LineEnd(p)
		if le >= m.buf.Len() {
			return
		}
		target = le + 1
	}

	end := m.buf.LineEnd(target)
	off := target + col
	if off > end {
		off = end
	}
	m.setPoint(off)
}

// Point exposes the cursor offset for the status bar and tests.
func (m Model) Point() int { return m.cur.Point() }

// SelectionRange exposes the active selection for tests.
func (m Model) SelectionRange() (textobject.Range, bool) {
	return textobject.Selection(m.cur)
}
