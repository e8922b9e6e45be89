package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/dev-connector/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type entryKind int

const (
	entryExperience entryKind = iota
	entryEducation
)

func (k entryKind) String() string {
	if k == entryEducation {
		return "education"
	}
	return "experience"
}

type entryRow struct {
	id   string
	cols []string
}

type deleteEntryFunc func(ctx context.Context, id string) (models.Profile, error)

// entryListModel renders one section of a profile, one row per entry, and
// deletes the selected entry on d/delete. Rows are only ever replaced by the
// parent through setRows: a delete does not remove its row, the row stays
// until the parent supplies the list from the profile the API returned.
type entryListModel struct {
	ctx     context.Context
	kind    entryKind
	headers []string
	del     deleteEntryFunc

	rows    []entryRow
	idx     int
	focused bool
	// ids with a delete request in flight
	pending map[string]bool
}

func newEntryListModel(ctx context.Context, kind entryKind, headers []string, del deleteEntryFunc) entryListModel {
	return entryListModel{
		ctx:     ctx,
		kind:    kind,
		headers: headers,
		del:     del,
		pending: map[string]bool{},
	}
}

func (m *entryListModel) setRows(rows []entryRow) {
	m.rows = rows
	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}

	present := make(map[string]bool, len(rows))
	for _, row := range rows {
		present[row.id] = true
	}
	for id := range m.pending {
		if !present[id] {
			delete(m.pending, id)
		}
	}
}

// deleteFailed forgets the in-flight marker of id so the row can be
// deleted again.
func (m *entryListModel) deleteFailed(id string) {
	delete(m.pending, id)
}

func (m *entryListModel) selected() (entryRow, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return entryRow{}, false
	}
	return m.rows[m.idx], true
}

func (m entryListModel) Update(msg tea.Msg) (entryListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.delete):
		row, ok := m.selected()
		if !ok || m.pending[row.id] {
			return m, nil
		}
		m.pending[row.id] = true
		return m, m.cmdDelete(row.id)
	}

	return m, nil
}

func (m entryListModel) cmdDelete(id string) tea.Cmd {
	ctx, kind, del := m.ctx, m.kind, m.del
	return func() tea.Msg {
		profile, err := del(ctx, id)
		return entryDeletedMsg{kind: kind, id: id, profile: profile, err: err}
	}
}

func (m entryListModel) View() string {
	if len(m.rows) == 0 {
		return mutedStyle.Render("  No " + m.kind.String() + " credentials yet")
	}

	widths := make([]int, len(m.headers))
	for i, h := range m.headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range m.rows {
		for i, col := range row.cols {
			if i < len(widths) && len([]rune(col)) > widths[i] {
				widths[i] = len([]rune(col))
			}
		}
	}
	for i := range widths {
		if widths[i] > 32 {
			widths[i] = 32
		}
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(joinCols(m.headers, widths))
	b.WriteString("\n")

	for i, row := range m.rows {
		cursor := "  "
		if m.focused && i == m.idx {
			cursor = "> "
		}
		line := cursor + joinCols(row.cols, widths)
		if m.pending[row.id] {
			line += "  " + mutedStyle.Render("deleting...")
		}
		if m.focused && i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func joinCols(cols []string, widths []int) string {
	parts := make([]string, len(cols))
	for i, col := range cols {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		parts[i] = fmt.Sprintf("%-*s", w, fitText(col, w))
	}
	return strings.TrimRight(strings.Join(parts, " │ "), " ")
}
