// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"}).
			Height(1)

	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999", Dark: "#666"})
)

type footer struct {
	width          int
	terminalWidth  int
	terminalHeight int
	status         string
}

func newFooter() *footer {
	return &footer{status: "drag a row to reorder"}
}

func (f *footer) Init() tea.Cmd {
	return nil
}

func (f *footer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.terminalWidth = msg.Width
		f.terminalHeight = msg.Height
	}
	return f, nil
}

func (f *footer) View() string {
	info := fmt.Sprintf("Terminal: %dx%d | %s | tab=focus enter=add/copy ctrl+c=quit",
		f.terminalWidth, f.terminalHeight, f.status)
	return footerStyle.Width(f.width).Render(debugStyle.Render(info))
}
