// Package memory provides the in-memory repository backing the engine. It is
// the production store for this client-side system, not a test double: all
// data lives in process and is loaded from and exported to dataset files.
package memory

import (
	"context"
	"sort"
	"sync"

	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/collection"
	"canvas-engine/internal/domain/relationship"
	"canvas-engine/internal/domain/shared"
)

// Repository is a mutex-guarded in-memory implementation of
// repository.Repository. Safe for concurrent use.
type Repository struct {
	mu            sync.RWMutex
	artifacts     map[string]*artifact.Artifact
	relationships map[string]*relationship.Relationship
	collections   map[shared.CollectionID]*collection.Collection
}

// New creates an empty repository.
func New() *Repository {
	return &Repository{
		artifacts:     make(map[string]*artifact.Artifact),
		relationships: make(map[string]*relationship.Relationship),
		collections:   make(map[shared.CollectionID]*collection.Collection),
	}
}

// SaveArtifact inserts or replaces an artifact.
func (r *Repository) SaveArtifact(_ context.Context, a *artifact.Artifact) error {
	if err := a.ValidateInvariants(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.artifacts[a.ID.String()] = a
	a.MarkEventsAsCommitted()
	return nil
}

// FindArtifact returns the artifact or ErrArtifactNotFound.
func (r *Repository) FindArtifact(_ context.Context, id shared.ArtifactID) (*artifact.Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.artifacts[id.String()]
	if !ok {
		return nil, shared.ErrArtifactNotFound
	}
	return a, nil
}

// ListArtifacts returns all artifacts, CreatedAt ascending with ID tiebreak.
func (r *Repository) ListArtifacts(_ context.Context) ([]*artifact.Artifact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*artifact.Artifact, 0, len(r.artifacts))
	for _, a := range r.artifacts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// DeleteArtifact removes the artifact and cascades to every relationship
// referencing it, returning the cascade count.
func (r *Repository) DeleteArtifact(_ context.Context, id shared.ArtifactID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.artifacts[id.String()]; !ok {
		return 0, shared.ErrArtifactNotFound
	}
	delete(r.artifacts, id.String())

	cascaded := 0
	for key, rel := range r.relationships {
		if rel.HasArtifact(id) {
			delete(r.relationships, key)
			cascaded++
		}
	}
	return cascaded, nil
}

// SaveRelationship inserts or replaces a relationship.
func (r *Repository) SaveRelationship(_ context.Context, rel *relationship.Relationship) error {
	if err := rel.ValidateInvariants(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.relationships[rel.ID.String()] = rel
	rel.MarkEventsAsCommitted()
	return nil
}

// FindRelationship returns the relationship or ErrRelationshipNotFound.
func (r *Repository) FindRelationship(_ context.Context, id shared.RelationshipID) (*relationship.Relationship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rel, ok := r.relationships[id.String()]
	if !ok {
		return nil, shared.ErrRelationshipNotFound
	}
	return rel, nil
}

// ListRelationships returns all relationships, CreatedAt ascending with ID
// tiebreak.
func (r *Repository) ListRelationships(_ context.Context) ([]*relationship.Relationship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*relationship.Relationship, 0, len(r.relationships))
	for _, rel := range r.relationships {
		out = append(out, rel)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// FindRelationshipsForArtifact returns every relationship touching the
// artifact as source or target.
func (r *Repository) FindRelationshipsForArtifact(ctx context.Context, id shared.ArtifactID) ([]*relationship.Relationship, error) {
	all, err := r.ListRelationships(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*relationship.Relationship, 0)
	for _, rel := range all {
		if rel.HasArtifact(id) {
			out = append(out, rel)
		}
	}
	return out, nil
}

// DeleteRelationship removes one relationship.
func (r *Repository) DeleteRelationship(_ context.Context, id shared.RelationshipID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.relationships[id.String()]; !ok {
		return shared.ErrRelationshipNotFound
	}
	delete(r.relationships, id.String())
	return nil
}

// SaveCollection inserts or replaces a collection.
func (r *Repository) SaveCollection(_ context.Context, c *collection.Collection) error {
	if err := c.ValidateInvariants(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.collections[c.ID] = c
	c.MarkEventsAsCommitted()
	return nil
}

// FindCollection returns the collection or ErrCollectionNotFound.
func (r *Repository) FindCollection(_ context.Context, id shared.CollectionID) (*collection.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.collections[id]
	if !ok {
		return nil, shared.ErrCollectionNotFound
	}
	return c, nil
}

// ListCollections returns all collections ordered by Order ascending, ID as
// the tiebreaker.
func (r *Repository) ListCollections(_ context.Context) ([]*collection.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*collection.Collection, 0, len(r.collections))
	for _, c := range r.collections {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// DeleteCollection removes the collection, re-roots child folders, and
// detaches every artifact membership pointing at it.
func (r *Repository) DeleteCollection(_ context.Context, id shared.CollectionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.collections[id]; !ok {
		return shared.ErrCollectionNotFound
	}
	delete(r.collections, id)

	for _, c := range r.collections {
		if c.ParentID != nil && *c.ParentID == id {
			c.ParentID = nil
		}
	}
	for _, a := range r.artifacts {
		a.RemoveFromCollection(id)
	}
	return nil
}
