package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/shared"
	"canvas-engine/internal/views"
)

func TestStore_InitialState(t *testing.T) {
	s := New(nil, nil)
	state := s.Snapshot()

	assert.Equal(t, ViewModeGrid, state.ViewMode)
	assert.Equal(t, views.SortByCreated, state.SortBy)
	assert.Empty(t, state.SelectedArtifactIDs)
	assert.Nil(t, state.SelectedCollectionID)
	assert.False(t, state.ShowRelationshipEditor)
}

func TestStore_InstancesAreIndependent(t *testing.T) {
	a := New(nil, nil)
	b := New(nil, nil)

	a.Dispatch(SetViewMode{Mode: ViewModeGraph})

	assert.Equal(t, ViewModeGraph, a.Snapshot().ViewMode)
	assert.Equal(t, ViewModeGrid, b.Snapshot().ViewMode)
}

func TestStore_FilterTransitions(t *testing.T) {
	s := New(nil, nil)
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Dispatch(SetSearchQuery{Query: "neural"})
	s.Dispatch(SetFilterTypes{Types: []artifact.Type{artifact.TypeDocument}})
	s.Dispatch(SetFilterTags{Tags: []string{"ml"}})
	s.Dispatch(SetDateRange{From: &from})

	state := s.Snapshot()
	assert.Equal(t, "neural", state.SearchQuery)
	assert.Equal(t, []artifact.Type{artifact.TypeDocument}, state.FilterTypes)
	assert.Equal(t, []string{"ml"}, state.FilterTags)
	require.NotNil(t, state.DateRange.From)
	assert.True(t, state.DateRange.From.Equal(from))
}

func TestStore_ClearFiltersKeepsCollectionFocus(t *testing.T) {
	s := New(nil, nil)
	collID := shared.CollectionID("papers")

	s.Dispatch(SetSelectedCollection{ID: &collID})
	s.Dispatch(SetSearchQuery{Query: "neural"})
	s.Dispatch(SetFilterTags{Tags: []string{"ml"}})
	s.Dispatch(ClearFilters{})

	state := s.Snapshot()
	assert.Empty(t, state.SearchQuery)
	assert.Empty(t, state.FilterTypes)
	assert.Empty(t, state.FilterTags)
	assert.Nil(t, state.DateRange.From)
	require.NotNil(t, state.SelectedCollectionID)
	assert.Equal(t, collID, *state.SelectedCollectionID)
}

func TestStore_NilCollectionDeselects(t *testing.T) {
	s := New(nil, nil)
	collID := shared.CollectionID("papers")

	s.Dispatch(SetSelectedCollection{ID: &collID})
	require.NotNil(t, s.Snapshot().SelectedCollectionID)

	s.Dispatch(SetSelectedCollection{ID: nil})
	assert.Nil(t, s.Snapshot().SelectedCollectionID)
}

func TestStore_ToggleCollection(t *testing.T) {
	s := New(nil, nil)
	id := shared.CollectionID("folder-1")

	s.Dispatch(ToggleCollection{ID: id})
	assert.True(t, s.Snapshot().ExpandedCollections[id])

	s.Dispatch(ToggleCollection{ID: id})
	assert.False(t, s.Snapshot().ExpandedCollections[id])
}

func TestStore_SnapshotIsDeepCopy(t *testing.T) {
	s := New(nil, nil)
	s.Dispatch(SetFilterTags{Tags: []string{"ml"}})

	snap := s.Snapshot()
	snap.FilterTags[0] = "mutated"
	snap.ExpandedCollections["x"] = true

	state := s.Snapshot()
	assert.Equal(t, []string{"ml"}, state.FilterTags)
	assert.Empty(t, state.ExpandedCollections)
}

func TestStore_SubscribersObserveTransitions(t *testing.T) {
	s := New(nil, nil)

	var seen []ViewMode
	unsubscribe := s.Subscribe(func(state State) {
		seen = append(seen, state.ViewMode)
	})

	s.Dispatch(SetViewMode{Mode: ViewModeTimeline})
	s.Dispatch(SetViewMode{Mode: ViewModeGraph})

	unsubscribe()
	s.Dispatch(SetViewMode{Mode: ViewModeGrid})

	assert.Equal(t, []ViewMode{ViewModeTimeline, ViewModeGraph}, seen)
}

func TestStore_FilterCriteria(t *testing.T) {
	s := New(nil, nil)
	collID := shared.CollectionID("papers")

	s.Dispatch(SetSelectedCollection{ID: &collID})
	s.Dispatch(SetSearchQuery{Query: "survey"})
	s.Dispatch(SetFilterTypes{Types: []artifact.Type{artifact.TypeDocument}})

	criteria := s.Snapshot().FilterCriteria()
	assert.Equal(t, "survey", criteria.Query)
	assert.Equal(t, []artifact.Type{artifact.TypeDocument}, criteria.Types)
	require.NotNil(t, criteria.CollectionID)
	assert.Equal(t, collID, *criteria.CollectionID)
}

func TestStore_SelectionTransitions(t *testing.T) {
	s := New(nil, nil)
	artID := shared.NewArtifactID()
	relID := shared.NewRelationshipID()

	s.Dispatch(SetSelectedArtifacts{IDs: []shared.ArtifactID{artID}})
	s.Dispatch(SetSelectedRelationship{ID: &relID})
	s.Dispatch(SetShowRelationshipEditor{Show: true})

	state := s.Snapshot()
	require.Len(t, state.SelectedArtifactIDs, 1)
	assert.True(t, state.SelectedArtifactIDs[0].Equals(artID))
	require.NotNil(t, state.SelectedRelationshipID)
	assert.True(t, state.SelectedRelationshipID.Equals(relID))
	assert.True(t, state.ShowRelationshipEditor)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := New(nil, nil)
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				s.Dispatch(SetSearchQuery{Query: "q"})
				_ = s.Snapshot()
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	assert.Equal(t, "q", s.Snapshot().SearchQuery)
}
