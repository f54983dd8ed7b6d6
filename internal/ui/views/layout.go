package views

import (
	"zeromonos/internal/suggest"
	"zeromonos/internal/ui/input/types"
)

// Rows of the form. The panel is drawn directly under the municipality
// field and pushes the remaining fields down.
const (
	municipalityRow = 2
	panelTop        = 3
)

// Layout maps form elements to screen rows for a given panel state
type Layout struct {
	panel     suggest.State
	panelRows int
}

// NewLayout computes the layout for the panel state
func NewLayout(panel suggest.State) Layout {
	return Layout{panel: panel, panelRows: PanelRows(panel)}
}

// PanelRows returns how many rows the suggestion panel occupies
func PanelRows(panel suggest.State) int {
	if !panel.Open {
		return 0
	}
	if panel.NoMatches {
		return 1
	}
	start, end := panel.Window.Bounds(len(panel.Visible))
	return end - start
}

// FieldRow returns the screen row of a field
func (l Layout) FieldRow(f types.Field) int {
	if f == types.FieldMunicipality {
		return municipalityRow
	}
	return panelTop + l.panelRows + int(f) - 1
}

// HitTest resolves screen coordinates. Only the row matters: every element
// spans the full width of the form.
func (l Layout) HitTest(x, y int) types.Hit {
	if y >= panelTop && y < panelTop+l.panelRows {
		if l.panel.NoMatches {
			return types.Hit{Kind: types.HitPanel}
		}
		start, _ := l.panel.Window.Bounds(len(l.panel.Visible))
		return types.Hit{Kind: types.HitSuggestion, Index: start + y - panelTop}
	}

	for f := types.Field(0); f < types.FieldCount; f++ {
		if l.FieldRow(f) == y {
			return types.Hit{Kind: types.HitField, Field: f}
		}
	}
	return types.Hit{Kind: types.HitOutside}
}
