package store

import (
	"time"

	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/shared"
	"canvas-engine/internal/views"
)

// Action is one state transition request. Each concrete action carries its
// payload; the store's reducer interprets it.
type Action interface {
	isAction()
}

// SetViewMode switches the active presentation surface.
type SetViewMode struct {
	Mode ViewMode
}

// SetSelectedArtifacts replaces the artifact selection.
type SetSelectedArtifacts struct {
	IDs []shared.ArtifactID
}

// SetSelectedCollection focuses one collection; a nil ID deselects.
type SetSelectedCollection struct {
	ID *shared.CollectionID
}

// ToggleCollection flips a folder's expanded state in the sidebar tree.
type ToggleCollection struct {
	ID shared.CollectionID
}

// SetSearchQuery replaces the free-text search query.
type SetSearchQuery struct {
	Query string
}

// SetFilterTypes replaces the artifact-type filter set.
type SetFilterTypes struct {
	Types []artifact.Type
}

// SetFilterTags replaces the tag filter set.
type SetFilterTags struct {
	Tags []string
}

// SetDateRange replaces the createdAt range filter; nil ends are open.
type SetDateRange struct {
	From *time.Time
	To   *time.Time
}

// SetSortBy replaces the grid sort key.
type SetSortBy struct {
	Key views.SortKey
}

// ClearFilters resets search, type, tag, and date filters. The selected
// collection is not a filter and survives.
type ClearFilters struct{}

// SetSelectedRelationship focuses one relationship; a nil ID deselects.
type SetSelectedRelationship struct {
	ID *shared.RelationshipID
}

// SetShowRelationshipEditor shows or hides the relationship editor panel.
type SetShowRelationshipEditor struct {
	Show bool
}

func (SetViewMode) isAction()               {}
func (SetSelectedArtifacts) isAction()      {}
func (SetSelectedCollection) isAction()     {}
func (ToggleCollection) isAction()          {}
func (SetSearchQuery) isAction()            {}
func (SetFilterTypes) isAction()            {}
func (SetFilterTags) isAction()             {}
func (SetDateRange) isAction()              {}
func (SetSortBy) isAction()                 {}
func (ClearFilters) isAction()              {}
func (SetSelectedRelationship) isAction()   {}
func (SetShowRelationshipEditor) isAction() {}

func actionName(a Action) string {
	switch a.(type) {
	case SetViewMode:
		return "set_view_mode"
	case SetSelectedArtifacts:
		return "set_selected_artifacts"
	case SetSelectedCollection:
		return "set_selected_collection"
	case ToggleCollection:
		return "toggle_collection"
	case SetSearchQuery:
		return "set_search_query"
	case SetFilterTypes:
		return "set_filter_types"
	case SetFilterTags:
		return "set_filter_tags"
	case SetDateRange:
		return "set_date_range"
	case SetSortBy:
		return "set_sort_by"
	case ClearFilters:
		return "clear_filters"
	case SetSelectedRelationship:
		return "set_selected_relationship"
	case SetShowRelationshipEditor:
		return "set_show_relationship_editor"
	default:
		return "unknown"
	}
}
