package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLayout() *LayoutState {
	size := 30.0
	return &LayoutState{
		Version: LayoutStateVersion,
		Name:    "default",
		Center: &PaneGroupSnapshot{
			ID:    "root",
			Axis:  AxisHorizontal,
			Ratio: 0.5,
			Children: []*PaneGroupSnapshot{
				{ID: "p1", Pane: &PaneSnapshot{ID: "p1", Items: []ItemSnapshot{{Kind: "text"}, {Kind: "text"}}}},
				{ID: "p2", Pane: &PaneSnapshot{ID: "p2", Items: []ItemSnapshot{{Kind: "text"}}}},
			},
		},
		Docks: []DockSnapshot{
			{Position: "left", Open: true, Panels: []PanelSnapshot{{Name: "project", Size: &size}}},
		},
	}
}

func TestLayoutState_Counts(t *testing.T) {
	s := sampleLayout()
	assert.Equal(t, 2, s.CountPanes())
	assert.Equal(t, 3, s.CountItems())

	var nilState *LayoutState
	assert.Equal(t, 0, nilState.CountPanes())
}

func TestLayoutState_Dock(t *testing.T) {
	s := sampleLayout()

	left, ok := s.Dock("left")
	require.True(t, ok)
	assert.True(t, left.Open)
	require.Len(t, left.Panels, 1)
	assert.Equal(t, 30.0, *left.Panels[0].Size)

	_, ok = s.Dock("bottom")
	assert.False(t, ok)
}

func TestPaneGroupSnapshot_WalkStopsEarly(t *testing.T) {
	s := sampleLayout()
	visited := 0
	s.Center.Walk(func(n *PaneGroupSnapshot) bool {
		visited++
		return n.ID != "p1"
	})
	assert.Equal(t, 2, visited)
}

func TestLayoutState_JSONShape(t *testing.T) {
	data, err := json.Marshal(sampleLayout())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"center":{"id":"root"`)
	assert.Contains(t, string(data), `"position":"left"`)
}
