// Package store implements the view-state container behind the canvas UI
// surfaces. State changes flow through typed actions dispatched to a Store
// instance; readers take snapshots and subscribers observe each transition.
package store

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/shared"
	"canvas-engine/internal/observability"
	"canvas-engine/internal/views"
)

// ViewMode selects the active presentation surface
type ViewMode string

const (
	ViewModeGrid        ViewMode = "grid"
	ViewModeTimeline    ViewMode = "timeline"
	ViewModeGraph       ViewMode = "graph"
	ViewModeCollections ViewMode = "collections"
)

// DateRange bounds the createdAt filter, both ends optional and inclusive.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// State is the full view state. Values handed out by Snapshot are deep
// copies; mutating them never affects the store.
type State struct {
	ViewMode               ViewMode
	SelectedArtifactIDs    []shared.ArtifactID
	SelectedCollectionID   *shared.CollectionID
	ExpandedCollections    map[shared.CollectionID]bool
	SearchQuery            string
	FilterTypes            []artifact.Type
	FilterTags             []string
	DateRange              DateRange
	SortBy                 views.SortKey
	SelectedRelationshipID *shared.RelationshipID
	ShowRelationshipEditor bool
}

// FilterCriteria translates the active filter state into view criteria.
func (s State) FilterCriteria() views.Criteria {
	return views.Criteria{
		Query:         s.SearchQuery,
		Types:         s.FilterTypes,
		Tags:          s.FilterTags,
		CollectionID:  s.SelectedCollectionID,
		CreatedAfter:  s.DateRange.From,
		CreatedBefore: s.DateRange.To,
	}
}

func initialState() State {
	return State{
		ViewMode:            ViewModeGrid,
		SelectedArtifactIDs: []shared.ArtifactID{},
		ExpandedCollections: make(map[shared.CollectionID]bool),
		SortBy:              views.SortByCreated,
	}
}

// Subscriber receives the post-transition snapshot after every dispatch.
type Subscriber func(State)

// Store holds the view state and reduces actions against it. Instances are
// independent; there is no package-level state. Safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers map[int]Subscriber
	nextSubID   int

	logger  *zap.Logger
	metrics *observability.Collector
}

// New creates a store with the default initial state. A nil logger is
// replaced by a no-op logger; metrics may be nil.
func New(logger *zap.Logger, metrics *observability.Collector) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		state:       initialState(),
		subscribers: make(map[int]Subscriber),
		logger:      logger,
		metrics:     metrics,
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyState(s.state)
}

// Subscribe registers a subscriber and returns its unsubscribe function.
// Subscribers are invoked synchronously after each transition, outside the
// store lock, with their own state copy.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Dispatch reduces one action against the state and notifies subscribers.
// Unknown actions are ignored with a warning, never a panic.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()

	if !s.reduce(action) {
		s.mu.Unlock()
		s.logger.Warn("ignoring unknown store action", zap.String("action", actionName(action)))
		return
	}

	snapshot := copyState(s.state)
	subs := make([]Subscriber, 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	name := actionName(action)
	s.logger.Debug("store transition", zap.String("action", name))
	if s.metrics != nil {
		s.metrics.StoreTransitions.WithLabelValues(name).Inc()
	}

	for _, fn := range subs {
		fn(copyState(snapshot))
	}
}

// reduce applies the action under the store lock. Returns false for actions
// the store does not recognize.
func (s *Store) reduce(action Action) bool {
	switch a := action.(type) {
	case SetViewMode:
		s.state.ViewMode = a.Mode
	case SetSelectedArtifacts:
		s.state.SelectedArtifactIDs = append([]shared.ArtifactID{}, a.IDs...)
	case SetSelectedCollection:
		s.state.SelectedCollectionID = copyCollectionID(a.ID)
	case ToggleCollection:
		if s.state.ExpandedCollections[a.ID] {
			delete(s.state.ExpandedCollections, a.ID)
		} else {
			s.state.ExpandedCollections[a.ID] = true
		}
	case SetSearchQuery:
		s.state.SearchQuery = a.Query
	case SetFilterTypes:
		s.state.FilterTypes = append([]artifact.Type{}, a.Types...)
	case SetFilterTags:
		s.state.FilterTags = append([]string{}, a.Tags...)
	case SetDateRange:
		s.state.DateRange = DateRange{From: copyTime(a.From), To: copyTime(a.To)}
	case SetSortBy:
		s.state.SortBy = a.Key
	case ClearFilters:
		// Collection focus survives a filter reset
		s.state.SearchQuery = ""
		s.state.FilterTypes = nil
		s.state.FilterTags = nil
		s.state.DateRange = DateRange{}
	case SetSelectedRelationship:
		s.state.SelectedRelationshipID = copyRelationshipID(a.ID)
	case SetShowRelationshipEditor:
		s.state.ShowRelationshipEditor = a.Show
	default:
		return false
	}
	return true
}

func copyState(s State) State {
	out := s
	out.SelectedArtifactIDs = append([]shared.ArtifactID{}, s.SelectedArtifactIDs...)
	out.SelectedCollectionID = copyCollectionID(s.SelectedCollectionID)
	out.ExpandedCollections = make(map[shared.CollectionID]bool, len(s.ExpandedCollections))
	for id, v := range s.ExpandedCollections {
		out.ExpandedCollections[id] = v
	}
	out.FilterTypes = append([]artifact.Type{}, s.FilterTypes...)
	out.FilterTags = append([]string{}, s.FilterTags...)
	out.DateRange = DateRange{From: copyTime(s.DateRange.From), To: copyTime(s.DateRange.To)}
	out.SelectedRelationshipID = copyRelationshipID(s.SelectedRelationshipID)
	return out
}

func copyCollectionID(id *shared.CollectionID) *shared.CollectionID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyRelationshipID(id *shared.RelationshipID) *shared.RelationshipID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
