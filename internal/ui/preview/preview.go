// Package preview hosts a layout document in the terminal. Every resize runs
// a layout pass at the terminal size and mirrors the result into a shade
// tree; every left click queries that tree and overlays what would have to
// be repainted.
package preview

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/idursun/reshade/internal/config"
	"github.com/idursun/reshade/internal/layout"
	"github.com/idursun/reshade/internal/shade"
	"github.com/idursun/reshade/internal/ui/render"
)

type Model struct {
	config *config.Config
	keyMap KeyMap
	styles Styles
	help   help.Model
	dl     *render.DisplayContext

	root layout.Node
	meta map[layout.Node]config.NodeMeta

	tree   *shade.Tree
	rootID shade.ID

	width, height int
	click         layout.Vec
	clicked       bool
	reshades      []shade.Reshade
	showDump      bool
}

// NewUI builds the layout tree declared by c. The tree is laid out once the
// first window size arrives.
func NewUI(c *config.Config) (*Model, error) {
	root, meta, err := c.Build()
	if err != nil {
		return nil, err
	}
	return &Model{
		config: c,
		keyMap: DefaultKeyMap(),
		styles: DefaultStyles(),
		help:   help.New(),
		dl:     render.NewDisplayContext(),
		root:   root,
		meta:   meta,
		rootID: shade.None,
	}, nil
}

func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keyMap.Clear, m.keyMap.Dump, m.keyMap.Quit}
}

func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.query(layout.V(float64(msg.X), float64(msg.Y)))
		}
		return nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return tea.Quit
		case key.Matches(msg, m.keyMap.Clear):
			m.clicked = false
			m.reshades = nil
		case key.Matches(msg, m.keyMap.Dump):
			m.showDump = !m.showDump
		}
	}
	return nil
}

// Reshades returns the result of the last click query.
func (m *Model) Reshades() []shade.Reshade {
	return m.reshades
}

// Region returns the shade region recorded for id.
func (m *Model) Region(id shade.ID) (shade.Bounds, error) {
	if m.tree == nil {
		return shade.Bounds{}, shade.ErrUnknownNode
	}
	return m.tree.Node(id)
}

// content is the area handed to the layout; the last row is the status line.
func (m *Model) content() layout.Vec {
	return layout.V(float64(m.width), float64(max(m.height-1, 0)))
}

func (m *Model) relayout() {
	available := m.content()
	viewport := m.config.ViewportOr(available)
	layout.Calculate(m.root, available, viewport, layout.Vec{})

	m.tree = shade.NewTree(shade.WithCoalesceRatio(m.config.Reshade.CoalesceRatio))
	m.rootID = shade.FromLayout(m.tree, m.root, config.Classifier(m.meta))
	m.clicked = false
	m.reshades = nil
	log.Printf("layout %gx%g (viewport %gx%g): %d regions", available.X, available.Y, viewport.X, viewport.Y, m.tree.Len())
}

func (m *Model) query(p layout.Vec) {
	if m.tree == nil {
		return
	}
	m.click = p
	m.clicked = true
	m.reshades = m.tree.CheckReshadePoint(m.rootID, p)
	log.Printf("click %v: %d reshades", p, len(m.reshades))
}

func (m *Model) ViewRect(dl *render.DisplayContext, area layout.Rect) {
	if m.tree == nil {
		return
	}
	if m.showDump {
		dump := layout.Describe(m.root) + "\n" + layout.Dump(m.root)
		dl.AddDraw(area.Cell(), dump, render.ZBox)
	} else {
		m.paint(dl, m.rootID)
		m.overlay(dl)
	}
	status := cellbuf.Rect(int(area.Pos.X), int(area.Bottom()), int(area.Size.X), 1)
	dl.AddLabel(status.Min.X, status.Min.Y, status.Dx(), m.statusText(), m.styles.Status, render.ZStatus)
}

func (m *Model) paint(dl *render.DisplayContext, id shade.ID) {
	b, err := m.tree.Node(id)
	if err != nil {
		return
	}
	rect := b.Rect().Cell()
	style := m.styles.Box
	switch {
	case !b.Drawable:
		style = m.styles.Container
	case b.Partial:
		style = m.styles.Partial
	}
	dl.AddBox(rect, b.Name, style, render.ZBox)
	if !b.Drawable {
		dl.AddDim(rect, render.ZBox)
	}
	for _, child := range m.tree.Children(id) {
		m.paint(dl, child)
	}
}

// overlay marks every reported node by emboldening the top edge of its
// outline, where the name is drawn, then reverses whole repaints and
// highlights partial regions.
func (m *Model) overlay(dl *render.DisplayContext) {
	for _, r := range m.reshades {
		b, err := m.tree.Node(r.Node)
		if err != nil {
			continue
		}
		rect := b.Rect().Cell()
		dl.AddBold(cellbuf.Rect(rect.Min.X, rect.Min.Y, rect.Dx(), min(rect.Dy(), 1)), render.ZFull)
		if r.Full {
			dl.AddReverse(rect, render.ZFull)
			continue
		}
		for _, region := range r.Regions {
			dl.AddHighlight(region.Cell(), m.styles.Region, render.ZRegion)
		}
	}
}

func (m *Model) statusText() string {
	if !m.clicked {
		return m.help.ShortHelpView(m.ShortHelp())
	}
	var names []string
	full := 0
	for _, r := range m.reshades {
		if r.Full {
			full++
		}
		if b, err := m.tree.Node(r.Node); err == nil && b.Name != "" {
			names = append(names, b.Name)
		}
	}
	return fmt.Sprintf("(%g, %g): %d to repaint, %d whole [%s]",
		m.click.X, m.click.Y, len(m.reshades), full, strings.Join(names, " "))
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	m.dl.Clear()
	m.ViewRect(m.dl, layout.Rect{Size: m.content()})
	return m.dl.RenderToString(m.width, m.height)
}

var _ tea.Model = (*wrapper)(nil)

type wrapper struct {
	ui *Model
}

func (w *wrapper) Init() tea.Cmd {
	return w.ui.Init()
}

func (w *wrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return w, w.ui.Update(msg)
}

func (w *wrapper) View() string {
	return w.ui.View()
}

// New adapts ui to a bubbletea program model.
func New(ui *Model) tea.Model {
	return &wrapper{ui: ui}
}
