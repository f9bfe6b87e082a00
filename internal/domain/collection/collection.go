// Package collection implements the Collection aggregate: either a folder
// (hierarchical via ParentID) or a tag (always flat). Artifact membership is
// recorded on the artifact side only; a collection never lists its members.
package collection

import (
	"time"

	"canvas-engine/internal/domain/shared"
)

// Type distinguishes hierarchical folders from flat tags
type Type string

const (
	TypeFolder Type = "folder"
	TypeTag    Type = "tag"
)

// IsValid reports whether the type is one of the recognized kinds
func (t Type) IsValid() bool {
	return t == TypeFolder || t == TypeTag
}

// Collection is a rich domain model for one folder or tag.
//
// Invariants:
//   - Name is non-empty
//   - Only folders may carry a ParentID, and never their own ID
//   - The full acyclicity check needs the whole collection set and lives in
//     the hierarchy resolver
type Collection struct {
	shared.BaseAggregateRoot

	ID          shared.CollectionID  `json:"id"`
	Name        string               `json:"name"`
	Type        Type                 `json:"type"`
	ParentID    *shared.CollectionID `json:"parentId,omitempty"`
	Color       string               `json:"color,omitempty"`
	Icon        string               `json:"icon,omitempty"`
	Description string               `json:"description,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	Order       int                  `json:"order"`
}

// New creates a new collection with validation.
func New(collectionType Type, name, createdBy string) (*Collection, error) {
	if !collectionType.IsValid() {
		return nil, shared.ErrInvalidCollectionType
	}
	if name == "" {
		return nil, shared.ErrEmptyCollectionName
	}

	id := shared.NewCollectionID()

	c := &Collection{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id.String()),
		ID:                id,
		Name:              name,
		Type:              collectionType,
		CreatedAt:         time.Now(),
	}

	c.AddEvent(shared.NewCollectionCreatedEvent(id, createdBy, string(collectionType), name))

	return c, nil
}

// Reconstruct rebuilds a collection from stored data without generating events.
func Reconstruct(id shared.CollectionID, name string, collectionType Type,
	parentID *shared.CollectionID, color, icon, description string,
	createdAt time.Time, order int) *Collection {
	return &Collection{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id.String()),
		ID:                id,
		Name:              name,
		Type:              collectionType,
		ParentID:          parentID,
		Color:             color,
		Icon:              icon,
		Description:       description,
		CreatedAt:         createdAt,
		Order:             order,
	}
}

// IsFolder reports whether this collection participates in the hierarchy.
func (c *Collection) IsFolder() bool {
	return c.Type == TypeFolder
}

// IsRoot reports whether this folder has no parent. Tags are always roots of
// nothing; they never appear in the tree.
func (c *Collection) IsRoot() bool {
	return c.ParentID == nil
}

// Rename replaces the collection name.
func (c *Collection) Rename(name string) error {
	if name == "" {
		return shared.ErrEmptyCollectionName
	}
	c.Name = name
	return nil
}

// SetParent re-parents a folder. Tags may never gain a parent, and a folder
// may never be its own parent. Reachability cycles across the wider tree are
// the resolver's concern.
func (c *Collection) SetParent(parentID *shared.CollectionID, actor string) error {
	if c.Type == TypeTag && parentID != nil {
		return shared.ErrTagCannotHaveParent
	}
	if parentID != nil && *parentID == c.ID {
		return shared.ErrCircularReference
	}

	c.ParentID = parentID
	c.AddEvent(shared.NewCollectionMovedEvent(c.ID, actor, parentID))
	return nil
}

// SetOrder replaces the sibling ordering key.
func (c *Collection) SetOrder(order int) {
	c.Order = order
}

// Delete records the deletion event. Detaching artifact memberships is the
// repository's responsibility.
func (c *Collection) Delete(actor string) {
	c.AddEvent(shared.NewCollectionDeletedEvent(c.ID, actor))
}

// ValidateInvariants ensures all business rules are satisfied
func (c *Collection) ValidateInvariants() error {
	if c.ID.String() == "" {
		return shared.NewDomainError("invalid_collection_state", "collection must have a valid ID", nil)
	}
	if c.Name == "" {
		return shared.NewDomainError("invalid_collection_state", "collection must have a name", nil)
	}
	if !c.Type.IsValid() {
		return shared.NewDomainError("invalid_collection_state", "collection type is not recognized", nil)
	}
	if c.Type == TypeTag && c.ParentID != nil {
		return shared.NewDomainError("invalid_collection_state", "tag collections cannot have a parent", nil)
	}
	if c.ParentID != nil && *c.ParentID == c.ID {
		return shared.NewDomainError("invalid_collection_state", "collection cannot be its own parent", nil)
	}
	if c.CreatedAt.IsZero() {
		return shared.NewDomainError("invalid_collection_state", "collection must have a creation timestamp", nil)
	}
	return nil
}
