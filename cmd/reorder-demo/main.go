// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/reorder/tui"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
)

func todayItems() []tui.Item {
	return []tui.Item{
		{ID: "notes", Title: "Draft release notes"},
		{ID: "review", Title: "Review open PRs"},
		{ID: "standup", Title: "Prep standup update"},
		{ID: "deploy", Title: "Deploy staging build"},
		{ID: "email", Title: "Answer support mail"},
	}
}

func laterItems() []tui.Item {
	return []tui.Item{
		{ID: "docs", Title: "Update onboarding docs"},
		{ID: "deps", Title: "Bump dependencies"},
		{ID: "bench", Title: "Profile the hot path"},
		{ID: "flaky", Title: "Chase the flaky test"},
		{ID: "talk", Title: "Outline conference talk"},
	}
}

type model struct {
	width  int
	height int

	header *header
	footer *footer
	input  textinput.Model
	split  *split

	focusRight bool
	nextID     int
}

func newModel() (*model, error) {
	m := &model{
		header: newHeader("Reorder Demo"),
		footer: newFooter(),
		nextID: 1,
	}
	if err := m.resetLists(); err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Placeholder = "Add to Today..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 30
	m.input = ti

	return m, nil
}

// resetLists rebuilds both panes with their initial items.
func (m *model) resetLists() error {
	left, err := tui.New(todayItems(),
		tui.WithTitle("Today"),
		tui.WithOnReorder(func(from, to int) {
			m.footer.status = fmt.Sprintf("Today: moved %d -> %d", from, to)
		}),
	)
	if err != nil {
		return err
	}
	right, err := tui.New(laterItems(),
		tui.WithTitle("Later"),
		tui.WithOnReorder(func(from, to int) {
			m.footer.status = fmt.Sprintf("Later: moved %d -> %d", from, to)
		}),
	)
	if err != nil {
		return err
	}
	m.split = newSplit(left, right)
	return nil
}

func (m *model) focused() *tui.List {
	if m.focusRight {
		return m.split.right
	}
	return m.split.left
}

func (m *model) focusedName() string {
	if m.focusRight {
		return "Later"
	}
	return "Today"
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+e":
			zone.SetEnabled(!zone.Enabled())
			return m, nil
		case "tab":
			m.focusRight = !m.focusRight
			m.input.Placeholder = "Add to " + m.focusedName() + "..."
			return m, nil
		case "enter":
			if v := strings.TrimSpace(m.input.Value()); v != "" {
				m.focused().Append(tui.Item{
					ID:    fmt.Sprintf("added-%d", m.nextID),
					Title: v,
				})
				m.nextID++
				m.input.SetValue("")
				m.layout()
				m.footer.status = fmt.Sprintf("added %q to %s", v, m.focusedName())
			} else {
				m.copyOrder()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.MouseMsg:
		_, headerCmd := m.header.Update(msg)
		m.split.Update(msg)
		return m, headerCmd

	case resetMsg:
		if err := m.resetLists(); err != nil {
			m.footer.status = fmt.Sprintf("reset failed: %v", err)
			return m, nil
		}
		m.layout()
		m.footer.status = "lists reset"
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// copyOrder writes the focused list's current order to the clipboard,
// one title per line.
func (m *model) copyOrder() {
	items := m.focused().Items()
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}
	if err := clipboard.WriteAll(strings.Join(titles, "\n")); err != nil {
		m.footer.status = fmt.Sprintf("couldn't write to clipboard: %v", err)
		return
	}
	m.footer.status = fmt.Sprintf("copied %d items from %s", len(titles), m.focusedName())
}

// layout allocates the interior height: header and footer keep their
// measured heights, the input takes one line, and the split gets the
// rest.
func (m *model) layout() {
	w := m.width - 2
	h := m.height - 2
	if w < 1 || h < 1 {
		return
	}
	m.header.Update(tea.WindowSizeMsg{Width: w, Height: h})
	m.footer.Update(tea.WindowSizeMsg{Width: w, Height: m.height})

	mid := h - lipgloss.Height(m.header.View()) - lipgloss.Height(m.footer.View()) - 1
	if mid < 1 {
		mid = 1
	}
	m.split.Update(tea.WindowSizeMsg{Width: w, Height: mid})
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(highlight).
		MaxHeight(m.height).
		MaxWidth(m.width)
	return zone.Scan(s.Render(lipgloss.JoinVertical(lipgloss.Top,
		m.header.View(),
		m.input.View(),
		m.split.View(),
		m.footer.View(),
	)))
}

func main() {
	zone.NewGlobal()

	m, err := newModel()
	if err != nil {
		fmt.Println("error building model:", err)
		os.Exit(1)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Println("error running program:", err)
		os.Exit(1)
	}
}
