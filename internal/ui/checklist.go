// Package ui implements the Boss Checker terminal interface.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bosscheck/internal/checklist"
)

// ChecklistModel is the Bubble Tea model for the checklist. It owns the
// application's single mutable state: the row list, the two filter inputs,
// and the dirty flag that triggers a save after a completion change.
type ChecklistModel struct {
	rows      []checklist.Row
	regions   []string
	regionIdx int
	search    textinput.Model
	help      help.Model

	cursor   int // index into the visible rows
	offset   int // scroll offset into the visible rows
	savePath string
	status   string
	dirty    bool

	width    int
	height   int
	Quitting bool
}

// NewChecklistModel builds the model from loaded rows. savePath is where
// the completion set is written after every toggle.
func NewChecklistModel(rows []checklist.Row, savePath string) ChecklistModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "name or region"
	ti.CharLimit = 64
	ti.Width = 32

	m := ChecklistModel{
		rows:     rows,
		regions:  checklist.Regions(rows),
		search:   ti,
		help:     help.New(),
		savePath: savePath,
	}
	for i, r := range m.regions {
		if r == checklist.AllRegions {
			m.regionIdx = i
			break
		}
	}
	m.refilter()
	return m
}

// Region returns the currently selected region filter.
func (m ChecklistModel) Region() string {
	return m.regions[m.regionIdx]
}

// Rows exposes the row list, mainly for callers inspecting final state.
func (m ChecklistModel) Rows() []checklist.Row {
	return m.rows
}

func (m ChecklistModel) Init() tea.Cmd {
	return nil
}

func (m ChecklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.Type {
			case tea.KeyCtrlC:
				m.Quitting = true
				return m, tea.Quit
			case tea.KeyEnter, tea.KeyEsc:
				m.search.Blur()
			default:
				m.search, cmd = m.search.Update(msg)
			}
			m.refilter()
			return m, cmd
		}

		switch {
		case key.Matches(msg, checklistKeys.Quit):
			m.Quitting = true
			return m, tea.Quit

		case key.Matches(msg, checklistKeys.Search):
			m.search.Focus()
			return m, textinput.Blink

		case key.Matches(msg, checklistKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, checklistKeys.Down):
			m.cursor++

		case key.Matches(msg, checklistKeys.NextRegion):
			m.regionIdx = (m.regionIdx + 1) % len(m.regions)

		case key.Matches(msg, checklistKeys.PrevRegion):
			m.regionIdx--
			if m.regionIdx < 0 {
				m.regionIdx = len(m.regions) - 1
			}

		case key.Matches(msg, checklistKeys.Toggle):
			if visible := m.visible(); len(visible) > 0 && m.cursor < len(visible) {
				idx := visible[m.cursor]
				m.rows[idx].Checked = !m.rows[idx].Checked
				m.dirty = true
			}

		case key.Matches(msg, checklistKeys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

		m.refilter()
	}

	// Any number of toggles in one frame produces exactly one save.
	if m.dirty {
		m.dirty = false
		if err := checklist.SaveState(m.savePath, m.rows); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
	}

	return m, cmd
}

// refilter recomputes row visibility from the current filter inputs and
// clamps the cursor back into the visible range.
func (m *ChecklistModel) refilter() {
	checklist.ApplyFilter(m.rows, m.Region(), m.search.Value())
	visible := m.visible()
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
	if page := m.pageSize(); m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
}

func (m ChecklistModel) visible() []int {
	idx := make([]int, 0, len(m.rows))
	for i, r := range m.rows {
		if r.Visible {
			idx = append(idx, i)
		}
	}
	return idx
}

// pageSize is the number of row lines that fit between the header block
// and the footer block.
func (m ChecklistModel) pageSize() int {
	if m.height == 0 {
		return len(m.rows) + 1
	}
	page := m.height - 7
	if page < 1 {
		page = 1
	}
	return page
}

func (m ChecklistModel) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Boss Checker"))
	b.WriteString("\n\n")

	selector := fmt.Sprintf("◀ %s ▶", m.Region())
	b.WriteString(selectorStyle.Render(selector))
	b.WriteString("  Boss: ")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	regionWidth := 0
	for _, r := range m.rows {
		if len(r.Region) > regionWidth {
			regionWidth = len(r.Region)
		}
	}

	visible := m.visible()
	page := m.pageSize()
	end := m.offset + page
	if end > len(visible) {
		end = len(visible)
	}
	for vi := m.offset; vi < end; vi++ {
		r := m.rows[visible[vi]]

		box := "[ ]"
		name := r.Name
		if r.Checked {
			box = checkedStyle.Render("[x]")
			name = checkedStyle.Render(name)
		}

		line := fmt.Sprintf("%s %s  %s", box, regionStyle.Render(fmt.Sprintf("%-*s", regionWidth, r.Region)), name)
		if vi == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(visible) == 0 {
		b.WriteString(regionStyle.Render("  no bosses match the current filter"))
		b.WriteString("\n")
	}

	done := 0
	for _, r := range m.rows {
		if r.Checked {
			done++
		}
	}
	b.WriteString("\n")
	b.WriteString(progressStyle.Render(fmt.Sprintf("%d/%d completed, %d shown", done, len(m.rows), len(visible))))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
	}

	b.WriteString(helpStyle.Render("\n" + m.help.View(checklistKeys)))
	return b.String()
}
