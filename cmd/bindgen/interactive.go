package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chipforge/matter-bindgen/encodable"
	"github.com/chipforge/matter-bindgen/idl"
	"github.com/chipforge/matter-bindgen/naming"
	"github.com/chipforge/matter-bindgen/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	model    *idl.Idl
	cfg      toolConfig
	filename string
	filter   textinput.Model
	visible  []int
	detail   string
	selected int
	attrSel  int
	state    modelState
}

type modelState int

const (
	stateSelectCluster modelState = iota
	stateSelectAttribute
	stateShowDetail
)

func newInteractiveModel(filename string, cfg toolConfig) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "filter clusters"
	ti.Prompt = "/ "
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		filename: filename,
		cfg:      cfg,
		filter:   ti,
		state:    stateSelectCluster,
	}
}

type loadedMsg struct {
	err   error
	model *idl.Idl
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadModel
}

func (m *interactiveModel) loadModel() tea.Msg {
	model, err := idl.LoadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}
	if err := idl.CheckSpecVersion(model, m.cfg.MinSpecVersion); err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{model: model}
}

func (m *interactiveModel) refilter() {
	m.visible = m.visible[:0]
	query := strings.ToLower(m.filter.Value())
	for i, c := range m.model.Clusters {
		if query == "" || strings.Contains(strings.ToLower(c.Name), query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *interactiveModel) currentCluster() *idl.Cluster {
	if len(m.visible) == 0 {
		return nil
	}
	return &m.model.Clusters[m.visible[m.selected]]
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "up", "ctrl+p":
			switch m.state {
			case stateSelectCluster:
				if m.selected > 0 {
					m.selected--
				}
			case stateSelectAttribute:
				if m.attrSel > 0 {
					m.attrSel--
				}
			}

		case "down", "ctrl+n":
			switch m.state {
			case stateSelectCluster:
				if m.selected < len(m.visible)-1 {
					m.selected++
				}
			case stateSelectAttribute:
				if c := m.currentCluster(); c != nil && m.attrSel < len(c.Attributes)-1 {
					m.attrSel++
				}
			}

		case "enter":
			switch m.state {
			case stateSelectCluster:
				if c := m.currentCluster(); c != nil && len(c.Attributes) > 0 {
					m.attrSel = 0
					m.state = stateSelectAttribute
				}

			case stateSelectAttribute:
				m.prepareDetail()
				m.state = stateShowDetail

			case stateShowDetail:
				m.state = stateSelectAttribute
				m.detail = ""
			}

		case "esc":
			switch m.state {
			case stateSelectAttribute:
				m.state = stateSelectCluster
			case stateShowDetail:
				m.state = stateSelectAttribute
				m.detail = ""
			case stateSelectCluster:
				return m, tea.Quit
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.model = msg.model
		m.refilter()
	}

	if m.state == stateSelectCluster && m.model != nil {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.refilter()
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareDetail() {
	cluster := m.currentCluster()
	if cluster == nil {
		return
	}
	attr := cluster.Attributes[m.attrSel]
	ctx := idl.NewLookupContext(m.model, cluster)

	var b strings.Builder
	field := attr.Definition

	write := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	write("Type:", formatFieldType(field))

	resolved, err := types.Resolve(field.Type, ctx)
	if err != nil {
		write("Resolved:", errorStyle.Render(err.Error()))
	} else {
		r := resolved.Kind.String()
		if resolved.Bits > 0 {
			r = fmt.Sprintf("%s (%d-bit)", r, resolved.Bits)
		}
		write("Resolved:", r)
		if canonical, ok := types.CanonicalName(resolved); ok {
			write("Canonical:", canonical)
		}
	}

	v := encodable.FromField(field, ctx)
	if kt, err := v.KotlinType(); err == nil {
		write("Kotlin:", kt)
	}
	if sig, err := v.BoxedSignature(); err == nil {
		write("Boxed:", sig)
	}
	if sig, err := v.UnboxedSignature(); err == nil {
		write("Unboxed:", sig)
	}

	write("Callback:", naming.AttributeCallbackName(attr, ctx))
	write("Delegated:", naming.DelegatedCallbackName(attr, ctx))
	write("Accessor:", naming.ClusterAccessorCallbackName(attr, ctx))
	write("Global callback:", fmt.Sprintf("%t", naming.UsesGlobalCallback(field)))
	write("Subscribable:", fmt.Sprintf("%t", idl.CanSubscribe(attr, ctx)))

	m.detail = b.String()
}

func formatFieldType(f idl.Field) string {
	t := typeStyle.Render(f.Type.Name)
	if f.IsList {
		t = "list<" + t + ">"
	}
	if f.IsNullable() {
		t = "nullable " + t
	}
	if f.IsOptional() {
		t = "optional " + t
	}
	return t
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress ctrl+c to quit.", m.err))
	}

	if m.model == nil {
		return "Loading model..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Binding Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectCluster:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		for i, idx := range m.visible {
			c := m.model.Clusters[idx]
			line := fmt.Sprintf("%s (attributes: %d, commands: %d)", c.Name, len(c.Attributes), len(c.Commands))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no clusters match"))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter open • esc quit"))

	case stateSelectAttribute:
		cluster := m.currentCluster()
		b.WriteString(fmt.Sprintf("Cluster %s\n\n", nameStyle.Render(cluster.Name)))
		for i, attr := range cluster.Attributes {
			line := attr.Definition.Name + ": " + formatFieldType(attr.Definition)
			if i == m.attrSel {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • esc back"))

	case stateShowDetail:
		cluster := m.currentCluster()
		attr := cluster.Attributes[m.attrSel]
		b.WriteString(fmt.Sprintf("%s.%s\n\n", nameStyle.Render(cluster.Name), nameStyle.Render(attr.Definition.Name)))
		b.WriteString(m.detail)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter back • esc back"))
	}

	return b.String()
}

func runInteractive(filename string, cfg toolConfig) error {
	p := tea.NewProgram(newInteractiveModel(filename, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
