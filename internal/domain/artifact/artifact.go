// Package artifact implements the Artifact aggregate: a single curated unit
// of research content (document, media, code, data, link, or note) carrying
// tags, collection memberships, and an open metadata map.
package artifact

import (
	"time"

	"canvas-engine/internal/domain/shared"
)

// Type classifies an artifact's content kind
type Type string

const (
	TypeDocument Type = "document"
	TypeMedia    Type = "media"
	TypeCode     Type = "code"
	TypeData     Type = "data"
	TypeLink     Type = "link"
	TypeNote     Type = "note"
)

// ValidTypes lists every recognized artifact type
var ValidTypes = []Type{TypeDocument, TypeMedia, TypeCode, TypeData, TypeLink, TypeNote}

// IsValid reports whether the type is one of the recognized kinds
func (t Type) IsValid() bool {
	switch t {
	case TypeDocument, TypeMedia, TypeCode, TypeData, TypeLink, TypeNote:
		return true
	}
	return false
}

// Artifact is a rich domain model for one curated content unit.
//
// Invariants:
//   - Title is non-empty
//   - Type is one of the recognized kinds
//   - ModifiedAt is never before CreatedAt
//
// Collection membership is recorded only here (CollectionIDs); collections
// never hold back-references to artifacts.
type Artifact struct {
	shared.BaseAggregateRoot

	ID            shared.ArtifactID      `json:"id"`
	Type          Type                   `json:"type"`
	Title         shared.Title           `json:"title"`
	Description   string                 `json:"description,omitempty"`
	Content       string                 `json:"content,omitempty"`
	URL           string                 `json:"url,omitempty"`
	Thumbnail     string                 `json:"thumbnail,omitempty"`
	Tags          shared.Tags            `json:"tags"`
	CollectionIDs []shared.CollectionID  `json:"collectionIds"`
	CreatedAt     time.Time              `json:"createdAt"`
	ModifiedAt    time.Time              `json:"modifiedAt"`
	CreatedBy     string                 `json:"createdBy"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

// New creates a new artifact with validation. The factory ensures artifacts
// are always created in a valid state and records the creation event.
func New(artifactType Type, title string, createdBy string, tags shared.Tags) (*Artifact, error) {
	if !artifactType.IsValid() {
		return nil, shared.ErrInvalidArtifactType
	}

	titleVO, err := shared.NewTitle(title)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	id := shared.NewArtifactID()

	a := &Artifact{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id.String()),
		ID:                id,
		Type:              artifactType,
		Title:             titleVO,
		Tags:              tags,
		CollectionIDs:     []shared.CollectionID{},
		CreatedAt:         now,
		ModifiedAt:        now,
		CreatedBy:         createdBy,
		Metadata:          make(map[string]interface{}),
	}

	a.AddEvent(shared.NewArtifactCreatedEvent(id, createdBy, string(artifactType), titleVO.String(), tags))

	return a, nil
}

// Reconstruct rebuilds an artifact from stored data without generating events.
func Reconstruct(id shared.ArtifactID, artifactType Type, title shared.Title,
	description, content, url, thumbnail string, tags shared.Tags,
	collectionIDs []shared.CollectionID, createdAt, modifiedAt time.Time,
	createdBy string, metadata map[string]interface{}) *Artifact {
	if collectionIDs == nil {
		collectionIDs = []shared.CollectionID{}
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}
	return &Artifact{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(id.String()),
		ID:                id,
		Type:              artifactType,
		Title:             title,
		Description:       description,
		Content:           content,
		URL:               url,
		Thumbnail:         thumbnail,
		Tags:              tags,
		CollectionIDs:     collectionIDs,
		CreatedAt:         createdAt,
		ModifiedAt:        modifiedAt,
		CreatedBy:         createdBy,
		Metadata:          metadata,
	}
}

// UpdateTitle replaces the title. Empty titles are rejected.
func (a *Artifact) UpdateTitle(title string) error {
	titleVO, err := shared.NewTitle(title)
	if err != nil {
		return err
	}
	if a.Title.Equals(titleVO) {
		return nil
	}

	a.Title = titleVO
	a.touch("title")
	return nil
}

// UpdateDescription replaces the description. Empty is valid.
func (a *Artifact) UpdateDescription(description string) {
	if a.Description == description {
		return
	}
	a.Description = description
	a.touch("description")
}

// UpdateContent replaces the primary body text.
func (a *Artifact) UpdateContent(content string) {
	if a.Content == content {
		return
	}
	a.Content = content
	a.touch("content")
}

// SetURL replaces the external URL.
func (a *Artifact) SetURL(url string) {
	if a.URL == url {
		return
	}
	a.URL = url
	a.touch("url")
}

// SetTags replaces the full tag set.
func (a *Artifact) SetTags(tags shared.Tags) {
	a.Tags = tags
	a.touch("tags")
}

// AddToCollection records direct membership in a collection. Adding an
// existing membership is a no-op.
func (a *Artifact) AddToCollection(id shared.CollectionID) {
	for _, existing := range a.CollectionIDs {
		if existing == id {
			return
		}
	}
	a.CollectionIDs = append(a.CollectionIDs, id)
	a.touch("collections")
}

// RemoveFromCollection drops direct membership in a collection.
func (a *Artifact) RemoveFromCollection(id shared.CollectionID) {
	for i, existing := range a.CollectionIDs {
		if existing == id {
			a.CollectionIDs = append(a.CollectionIDs[:i], a.CollectionIDs[i+1:]...)
			a.touch("collections")
			return
		}
	}
}

// InCollection reports direct membership in the given collection.
func (a *Artifact) InCollection(id shared.CollectionID) bool {
	for _, existing := range a.CollectionIDs {
		if existing == id {
			return true
		}
	}
	return false
}

// SetMetadata stores a type-specific metadata field (e.g. language for code,
// mimeType for media).
func (a *Artifact) SetMetadata(key string, value interface{}) {
	a.Metadata[key] = value
	a.touch("metadata")
}

// Delete records the deletion event. Removal from storage and cascading to
// relationships is the repository's responsibility.
func (a *Artifact) Delete(actor string) {
	a.AddEvent(shared.NewArtifactDeletedEvent(a.ID, actor))
}

// ValidateInvariants ensures all business rules are satisfied
func (a *Artifact) ValidateInvariants() error {
	if a.ID.IsEmpty() {
		return shared.NewDomainError("invalid_artifact_state", "artifact must have a valid ID", nil)
	}
	if !a.Type.IsValid() {
		return shared.NewDomainError("invalid_artifact_state", "artifact type is not recognized", nil)
	}
	if a.Title.String() == "" {
		return shared.NewDomainError("invalid_artifact_state", "artifact must have a title", nil)
	}
	if a.CreatedAt.IsZero() {
		return shared.NewDomainError("invalid_artifact_state", "artifact must have a creation timestamp", nil)
	}
	if a.ModifiedAt.Before(a.CreatedAt) {
		return shared.NewDomainError("invalid_artifact_state", "artifact modification timestamp cannot be before creation timestamp", nil)
	}
	return nil
}

// touch bumps ModifiedAt and records a field-level update event.
func (a *Artifact) touch(field string) {
	a.ModifiedAt = time.Now()
	a.AddEvent(shared.NewArtifactUpdatedEvent(a.ID, a.CreatedBy, field))
}
