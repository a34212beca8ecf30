package tui

import (
	"fmt"
	"slices"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/golang/geo/r3"
)

// refreshAttrs rebuilds the artifact table from the canvas.
func (m *Model) refreshAttrs() {
	if m.in == nil || m.canvas.Len() == 0 {
		m.showAttrs = false
		m.status = "no artifacts in current scene"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "handle", Width: 7},
		{Title: "kind", Width: 14},
		{Title: "vertices", Width: 9},
		{Title: "held", Width: 5},
		{Title: "description", Width: 36},
	}
	held := m.in.Held()
	rows := make([]table.Row, 0, m.canvas.Len())
	for i, h := range m.canvas.order {
		a := m.canvas.items[h]
		n := 0
		a.vertices(func(r3.Vector) { n++ })
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", h),
			a.label,
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%v", slices.Contains(held, h)),
			firstLine(m.in.Describe(h)),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
