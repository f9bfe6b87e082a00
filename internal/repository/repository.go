// Package repository defines the persistence ports for the canvas engine.
// Implementations own the data; the service layer and the view builders only
// see these interfaces.
package repository

import (
	"context"

	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/collection"
	"canvas-engine/internal/domain/relationship"
	"canvas-engine/internal/domain/shared"
)

// ArtifactRepository persists Artifact aggregates.
type ArtifactRepository interface {
	SaveArtifact(ctx context.Context, a *artifact.Artifact) error
	FindArtifact(ctx context.Context, id shared.ArtifactID) (*artifact.Artifact, error)
	// ListArtifacts returns every artifact ordered by CreatedAt ascending,
	// ID as the tiebreaker, so listings are deterministic.
	ListArtifacts(ctx context.Context) ([]*artifact.Artifact, error)
	// DeleteArtifact removes the artifact and every relationship that
	// references it, returning the number of relationships cascaded.
	DeleteArtifact(ctx context.Context, id shared.ArtifactID) (int, error)
}

// RelationshipRepository persists Relationship aggregates.
type RelationshipRepository interface {
	SaveRelationship(ctx context.Context, r *relationship.Relationship) error
	FindRelationship(ctx context.Context, id shared.RelationshipID) (*relationship.Relationship, error)
	ListRelationships(ctx context.Context) ([]*relationship.Relationship, error)
	// FindRelationshipsForArtifact returns every relationship with the
	// artifact as either endpoint.
	FindRelationshipsForArtifact(ctx context.Context, id shared.ArtifactID) ([]*relationship.Relationship, error)
	DeleteRelationship(ctx context.Context, id shared.RelationshipID) error
}

// CollectionRepository persists Collection aggregates.
type CollectionRepository interface {
	SaveCollection(ctx context.Context, c *collection.Collection) error
	FindCollection(ctx context.Context, id shared.CollectionID) (*collection.Collection, error)
	ListCollections(ctx context.Context) ([]*collection.Collection, error)
	// DeleteCollection removes the collection and detaches every artifact
	// membership pointing at it. Artifacts themselves are untouched.
	DeleteCollection(ctx context.Context, id shared.CollectionID) error
}

// Repository is the combined port the service layer depends on.
type Repository interface {
	ArtifactRepository
	RelationshipRepository
	CollectionRepository
}
