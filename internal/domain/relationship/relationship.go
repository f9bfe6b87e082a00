// Package relationship implements the Relationship aggregate: a directed,
// typed semantic edge between two artifacts. Relationships form a directed
// multigraph; cycles, parallel edges of different types between the same
// pair, and isolated artifacts are all valid.
package relationship

import (
	"time"

	"canvas-engine/internal/domain/shared"
)

// Type classifies the semantic meaning of a relationship
type Type string

const (
	TypeReferences  Type = "references"
	TypeBuildsOn    Type = "builds-on"
	TypeContradicts Type = "contradicts"
	TypeImplements  Type = "implements"
	TypeCites       Type = "cites"
	TypeDerivesFrom Type = "derives-from"
	TypeRelatedTo   Type = "related-to"
)

// ValidTypes lists every recognized relationship type
var ValidTypes = []Type{
	TypeReferences, TypeBuildsOn, TypeContradicts,
	TypeImplements, TypeCites, TypeDerivesFrom, TypeRelatedTo,
}

// IsValid reports whether the type is one of the recognized kinds
func (t Type) IsValid() bool {
	switch t {
	case TypeReferences, TypeBuildsOn, TypeContradicts,
		TypeImplements, TypeCites, TypeDerivesFrom, TypeRelatedTo:
		return true
	}
	return false
}

// IsProgression reports whether the type represents forward progression.
// Progression edges get directional emphasis (animated/bold) in the graph
// view and heavy arrows in the diagram export.
func (t Type) IsProgression() bool {
	return t == TypeBuildsOn || t == TypeDerivesFrom
}

// Label returns the human-readable form used in diagram edge labels.
func (t Type) Label() string {
	switch t {
	case TypeReferences:
		return "References"
	case TypeBuildsOn:
		return "Builds On"
	case TypeContradicts:
		return "Contradicts"
	case TypeImplements:
		return "Implements"
	case TypeCites:
		return "Cites"
	case TypeDerivesFrom:
		return "Derives From"
	case TypeRelatedTo:
		return "Related To"
	}
	return string(t)
}

// Relationship is a rich domain model for one semantic edge.
//
// Business rules enforced at creation:
//   - Source and target must be different artifacts
//   - Type must be recognized
//   - Confidence, when supplied, is in 0-100
//
// Existence of both endpoints is a repository-level check; the aggregate only
// sees identifiers.
type Relationship struct {
	shared.BaseAggregateRoot

	ID         shared.RelationshipID `json:"id"`
	SourceID   shared.ArtifactID     `json:"sourceId"`
	TargetID   shared.ArtifactID     `json:"targetId"`
	Type       Type                  `json:"type"`
	Confidence shared.Confidence     `json:"confidence,omitempty"`
	Notes      string                `json:"notes,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
	CreatedBy  string                `json:"createdBy"`
}

// New creates a new relationship between two artifacts with validation.
func New(sourceID, targetID shared.ArtifactID, relType Type, confidence shared.Confidence, createdBy string) (*Relationship, error) {
	if sourceID.Equals(targetID) {
		return nil, shared.ErrSelfLink
	}
	if !relType.IsValid() {
		return nil, shared.ErrInvalidRelationshipType
	}

	id := shared.NewRelationshipID()

	r := &Relationship{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id.String()),
		ID:                id,
		SourceID:          sourceID,
		TargetID:          targetID,
		Type:              relType,
		Confidence:        confidence,
		CreatedAt:         time.Now(),
		CreatedBy:         createdBy,
	}

	r.AddEvent(shared.NewRelationshipCreatedEvent(id, sourceID, targetID, createdBy, string(relType)))

	return r, nil
}

// Reconstruct rebuilds a relationship from stored data without generating
// events. Self-links present in supplied data are preserved, not rejected;
// the graph builder tolerates them.
func Reconstruct(id shared.RelationshipID, sourceID, targetID shared.ArtifactID,
	relType Type, confidence shared.Confidence, notes string,
	createdAt time.Time, createdBy string) *Relationship {
	return &Relationship{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id.String()),
		ID:                id,
		SourceID:          sourceID,
		TargetID:          targetID,
		Type:              relType,
		Confidence:        confidence,
		Notes:             notes,
		CreatedAt:         createdAt,
		CreatedBy:         createdBy,
	}
}

// HasArtifact checks if this relationship involves a specific artifact
func (r *Relationship) HasArtifact(id shared.ArtifactID) bool {
	return r.SourceID.Equals(id) || r.TargetID.Equals(id)
}

// IsSelfLink reports whether source and target are the same artifact.
// Creation rejects these, but reconstructed data may carry them.
func (r *Relationship) IsSelfLink() bool {
	return r.SourceID.Equals(r.TargetID)
}

// Delete records the deletion event.
func (r *Relationship) Delete(actor string, cascaded bool) {
	r.AddEvent(shared.NewRelationshipDeletedEvent(r.ID, actor, cascaded))
}

// ValidateInvariants ensures all business rules are satisfied
func (r *Relationship) ValidateInvariants() error {
	if r.ID.IsEmpty() {
		return shared.NewDomainError("invalid_relationship_state", "relationship must have a valid ID", nil)
	}
	if r.SourceID.IsEmpty() || r.TargetID.IsEmpty() {
		return shared.NewDomainError("invalid_relationship_state", "relationship must reference two artifacts", nil)
	}
	if !r.Type.IsValid() {
		return shared.NewDomainError("invalid_relationship_state", "relationship type is not recognized", nil)
	}
	if r.CreatedAt.IsZero() {
		return shared.NewDomainError("invalid_relationship_state", "relationship must have a creation timestamp", nil)
	}
	return nil
}
