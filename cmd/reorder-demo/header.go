// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}).
			Height(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Background(subtle)

	headerButtonStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Margin(0, 1).
				Padding(0, 1)

	headerButtonActiveStyle = headerButtonStyle.
				Background(special).
				Bold(true)
)

// resetMsg asks the root model to restore both lists to their initial
// order.
type resetMsg struct{}

type header struct {
	id    string
	width int
	title string
}

func newHeader(title string) *header {
	return &header{
		id:    zone.NewPrefix(),
		title: title,
	}
}

func (h *header) Init() tea.Cmd {
	return nil
}

func (h *header) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return h, nil
		}
		if zone.Get(h.id + "reset").InBounds(msg) {
			return h, func() tea.Msg { return resetMsg{} }
		}
		if zone.Get(h.id + "mouse").InBounds(msg) {
			zone.SetEnabled(!zone.Enabled())
		}
	}
	return h, nil
}

func (h *header) View() string {
	mouseStyle := headerButtonStyle
	if zone.Enabled() {
		mouseStyle = headerButtonActiveStyle
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		zone.Mark(h.id+"reset", headerButtonStyle.Render("Reset")),
		zone.Mark(h.id+"mouse", mouseStyle.Render("Mouse")),
	)
	buttonsWidth := lipgloss.Width(buttons)

	title := titleStyle.Render(h.title)
	spacingWidth := h.width - lipgloss.Width(title) - buttonsWidth - 2
	if spacingWidth < 0 {
		spacingWidth = 0
	}
	spacing := lipgloss.NewStyle().Background(subtle).Width(spacingWidth).Render("")

	content := lipgloss.JoinHorizontal(lipgloss.Center, title, spacing, buttons)
	return headerStyle.Width(h.width).Render(content)
}
