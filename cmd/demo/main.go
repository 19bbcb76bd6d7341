// Command demo renders headless radio groups in the terminal. The widget
// tree runs unmodified against an in-memory document; this program only
// translates terminal key presses into document events and draws the
// resulting host tree.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/headless/cmd/demo/internal/config"
	"github.com/go-drift/headless/pkg/core"
	"github.com/go-drift/headless/pkg/host"
	"github.com/go-drift/headless/pkg/widgets"
)

func main() {
	cfg, err := config.LoadOptional(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := tea.NewProgram(newModel(cfg), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// demoApp mounts one RadioGroup per configured group, holding the selected
// values as the external source of truth the groups bind to.
type demoApp struct {
	core.StatefulBase
	cfg *config.Config
}

func (w demoApp) CreateElement() core.Element { return core.CreateStatefulElement(w) }

func (w demoApp) CreateState() core.State { return &demoAppState{} }

type demoAppState struct {
	core.StateBase
	selections []any
}

func (s *demoAppState) InitState() {
	w := s.Element().Widget().(demoApp)
	s.selections = make([]any, len(w.cfg.Groups))
	for i, g := range w.cfg.Groups {
		if g.Initial != "" {
			s.selections[i] = g.Initial
		}
	}
}

func (s *demoAppState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(demoApp)
	groups := make([]core.Widget, 0, len(w.cfg.Groups))
	for i, g := range w.cfg.Groups {
		index := i
		children := make([]core.Widget, 0, len(g.Options)+2)
		if g.Label != "" {
			children = append(children, widgets.GroupLabel{Text: g.Label})
		}
		if g.Description != "" {
			children = append(children, widgets.GroupDescription{Text: g.Description})
		}
		for _, o := range g.Options {
			children = append(children, widgets.RadioOption{
				StatefulBase: core.StatefulBase{WidgetKey: o.Value},
				Value:        o.Value,
				Disabled:     o.Disabled,
				Label:        o.Display(),
				Child:        widgets.Text{Content: o.Display()},
			})
		}
		groups = append(groups, widgets.RadioGroup{
			StatefulBase: core.StatefulBase{WidgetKey: index},
			Value:        s.selections[index],
			Disabled:     g.Disabled,
			OnChanged: func(v any) {
				s.SetState(func() { s.selections[index] = v })
			},
			Child: widgets.Box{Children: children},
		})
	}
	return widgets.Box{ID: "demo", Children: groups}
}

type keyMap struct {
	Navigate  key.Binding
	Select    key.Binding
	Click     key.Binding
	NextGroup key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Navigate: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("↑/↓/←/→", "navigate"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "click focused"),
		),
		NextGroup: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next group"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type model struct {
	cfg   *config.Config
	keys  keyMap
	owner *core.BuildOwner
	doc   *host.Document
	root  core.Element
}

func newModel(cfg *config.Config) *model {
	owner := core.NewBuildOwner()
	doc := host.NewDocument()
	root := core.MountRoot(demoApp{cfg: cfg}, owner, doc)
	owner.FlushBuild()
	return &model{
		cfg:   cfg,
		keys:  defaultKeyMap(),
		owner: owner,
		doc:   doc,
		root:  root,
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.NextGroup):
		m.moveTab()
	case key.Matches(keyMsg, m.keys.Click):
		m.doc.Click(m.doc.Focused())
	default:
		if k, mapped := hostKeyFor(keyMsg.String()); mapped {
			m.doc.DispatchKey(host.KeyEvent{Key: k})
		}
	}

	m.owner.FlushBuild()
	return m, nil
}

func hostKeyFor(name string) (host.Key, bool) {
	switch name {
	case "left":
		return host.KeyLeft, true
	case "right":
		return host.KeyRight, true
	case "up":
		return host.KeyUp, true
	case "down":
		return host.KeyDown, true
	case " ", "space":
		return host.KeySpace, true
	}
	return host.KeyNone, false
}

// moveTab jumps between groups through their roving tab stops, the way
// sequential Tab navigation would.
func (m *model) moveTab() {
	stops := m.tabStops()
	if len(stops) == 0 {
		return
	}
	focused := m.doc.Focused()
	if focused == nil {
		m.doc.Focus(stops[0])
		return
	}
	current := groupRootOf(focused)
	for i, stop := range stops {
		if groupRootOf(stop) == current {
			m.doc.Focus(stops[(i+1)%len(stops)])
			return
		}
	}
	m.doc.Focus(stops[0])
}

func (m *model) tabStops() []*host.Node {
	var stops []*host.Node
	m.doc.Root().Walk(func(n *host.Node) bool {
		if n.TabStop() {
			stops = append(stops, n)
		}
		return true
	})
	return stops
}

func groupRootOf(n *host.Node) *host.Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Role() == "radiogroup" {
			return cur
		}
	}
	return nil
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	groupStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	describeStyle = lipgloss.NewStyle().Faint(true)
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	disabledStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.cfg.Title))
	b.WriteString("\n")

	m.doc.Root().Walk(func(n *host.Node) bool {
		if n.Role() == "radiogroup" {
			b.WriteString(m.renderGroup(n))
			b.WriteString("\n")
			return false
		}
		return true
	})

	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *model) renderGroup(group *host.Node) string {
	var lines []string

	if ids, ok := group.Attribute("aria-labelledby"); ok {
		for _, id := range strings.Fields(ids) {
			if label := host.FindByID(group, id); label != nil {
				lines = append(lines, labelStyle.Render(label.Text()))
			}
		}
	}
	if ids, ok := group.Attribute("aria-describedby"); ok {
		for _, id := range strings.Fields(ids) {
			if desc := host.FindByID(group, id); desc != nil {
				lines = append(lines, describeStyle.Render(desc.Text()))
			}
		}
	}

	group.Walk(func(n *host.Node) bool {
		if n.Role() == "radio" {
			lines = append(lines, m.renderOption(n))
			return false
		}
		return true
	})

	rendered := groupStyle.Render(strings.Join(lines, "\n"))
	if v, _ := group.Attribute("aria-disabled"); v == "true" {
		return disabledStyle.Strikethrough(false).Render(rendered)
	}
	return rendered
}

func (m *model) renderOption(n *host.Node) string {
	marker := "( )"
	if v, _ := n.Attribute("aria-checked"); v == "true" {
		marker = "(•)"
	}

	line := marker + " " + optionText(n)
	if v, _ := n.Attribute("aria-disabled"); v == "true" {
		return "  " + disabledStyle.Render(line)
	}
	if n.IsFocused() {
		return focusedStyle.Render("> " + line)
	}
	return "  " + line
}

// optionText collects the text content of the option subtree.
func optionText(option *host.Node) string {
	var parts []string
	option.Walk(func(n *host.Node) bool {
		if text := n.Text(); text != "" {
			parts = append(parts, text)
		}
		return true
	})
	return strings.Join(parts, " ")
}

func (m *model) renderHelp() string {
	bindings := []key.Binding{m.keys.Navigate, m.keys.Select, m.keys.Click, m.keys.NextGroup, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
