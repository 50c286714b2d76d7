// Package entity contains the identifiers, geometry and serializable layout
// state shared by the layout packages. These are pure Go types with no
// infrastructure dependencies.
package entity

// ItemID uniquely identifies an item for its whole lifetime, across panes.
type ItemID string

// PaneID uniquely identifies a pane.
type PaneID string

// PanelID uniquely identifies a dock panel.
type PanelID string

// WorkspaceID uniquely identifies a workspace.
type WorkspaceID string

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string
