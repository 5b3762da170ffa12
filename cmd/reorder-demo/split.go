// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/reorder/tui"
)

const (
	handleWidth   = 1
	minProportion = 0.20
	maxProportion = 0.80
)

var (
	handleStyle = lipgloss.NewStyle().
			Width(handleWidth).
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#585858"})

	handleActiveStyle = handleStyle.
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"})
)

// split lays two reorderable lists side by side with a draggable divider
// between them. Dragging the divider resizes the panes; everything else
// is forwarded to both lists, each of which only reacts to presses on
// its own rows.
type split struct {
	id     string
	width  int
	height int

	left  *tui.List
	right *tui.List

	// left pane's share of the available width
	proportion float64

	dragging bool
	lastX    int
}

func newSplit(left, right *tui.List) *split {
	return &split{
		id:         zone.NewPrefix(),
		left:       left,
		right:      right,
		proportion: 0.5,
	}
}

func (s *split) Init() tea.Cmd {
	return nil
}

func (s *split) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.layout()

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft && zone.Get(s.handleID()).InBounds(msg) {
				s.dragging = true
				s.lastX = msg.X
				return s, nil
			}
		case tea.MouseActionMotion:
			if s.dragging {
				s.resizeBy(msg.X - s.lastX)
				s.lastX = msg.X
				return s, nil
			}
		case tea.MouseActionRelease:
			if s.dragging && msg.Button == tea.MouseButtonLeft {
				s.dragging = false
				return s, nil
			}
		}
		s.left.Update(msg)
		s.right.Update(msg)

	default:
		s.left.Update(msg)
		s.right.Update(msg)
	}
	return s, nil
}

func (s *split) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.left.View(),
		s.renderHandle(),
		s.right.View(),
	)
}

// layout pushes the current pane sizes down to the lists.
func (s *split) layout() {
	avail := s.width - handleWidth
	if avail < 2 {
		return
	}
	leftW := int(float64(avail) * s.proportion)
	s.left.Update(tea.WindowSizeMsg{Width: leftW, Height: s.height})
	s.right.Update(tea.WindowSizeMsg{Width: avail - leftW, Height: s.height})
}

// resizeBy shifts the divider by delta columns, clamped so neither pane
// collapses.
func (s *split) resizeBy(delta int) {
	avail := s.width - handleWidth
	if avail <= 0 || delta == 0 {
		return
	}
	p := s.proportion + float64(delta)/float64(avail)
	if p < minProportion {
		p = minProportion
	}
	if p > maxProportion {
		p = maxProportion
	}
	s.proportion = p
	s.layout()
}

func (s *split) renderHandle() string {
	style := handleStyle
	if s.dragging {
		style = handleActiveStyle
	}
	content := ""
	for i := 0; i < s.height; i++ {
		if i > 0 {
			content += "\n"
		}
		content += "│"
	}
	return zone.Mark(s.handleID(), style.Render(content))
}

func (s *split) handleID() string {
	return s.id + "handle"
}
