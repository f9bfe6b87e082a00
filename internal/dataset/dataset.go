// Package dataset reads and writes the engine's portable dataset format: a
// single JSON document holding the artifact, relationship, and collection
// lists. It is the interchange format between engine instances and the host
// binary's input.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/collection"
	"canvas-engine/internal/domain/relationship"
	"canvas-engine/internal/domain/shared"
)

// Dataset holds the three reconstructed lists.
type Dataset struct {
	Artifacts     []*artifact.Artifact
	Relationships []*relationship.Relationship
	Collections   []*collection.Collection
}

type fileFormat struct {
	Artifacts     []artifactRecord     `json:"artifacts"`
	Relationships []relationshipRecord `json:"relationships"`
	Collections   []collectionRecord   `json:"collections"`
}

type artifactRecord struct {
	ID            string                 `json:"id"`
	Type          string                 `json:"type"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description,omitempty"`
	Content       string                 `json:"content,omitempty"`
	URL           string                 `json:"url,omitempty"`
	Thumbnail     string                 `json:"thumbnail,omitempty"`
	Tags          []string               `json:"tags,omitempty"`
	CollectionIDs []string               `json:"collectionIds,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	ModifiedAt    time.Time              `json:"modifiedAt"`
	CreatedBy     string                 `json:"createdBy,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

type relationshipRecord struct {
	ID         string    `json:"id"`
	SourceID   string    `json:"sourceId"`
	TargetID   string    `json:"targetId"`
	Type       string    `json:"type"`
	Confidence *int      `json:"confidence,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	CreatedBy  string    `json:"createdBy,omitempty"`
}

type collectionRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	ParentID    *string   `json:"parentId,omitempty"`
	Color       string    `json:"color,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Order       int       `json:"order"`
}

// Load reads a dataset file and reconstructs the domain aggregates. Records
// that fail reconstruction abort the load with a positional error; partial
// datasets are never returned.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a dataset document from raw JSON.
func Parse(raw []byte) (*Dataset, error) {
	var file fileFormat
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	ds := &Dataset{}

	for i, rec := range file.Artifacts {
		a, err := reconstructArtifact(rec)
		if err != nil {
			return nil, fmt.Errorf("artifacts[%d]: %w", i, err)
		}
		ds.Artifacts = append(ds.Artifacts, a)
	}
	for i, rec := range file.Relationships {
		r, err := reconstructRelationship(rec)
		if err != nil {
			return nil, fmt.Errorf("relationships[%d]: %w", i, err)
		}
		ds.Relationships = append(ds.Relationships, r)
	}
	for i, rec := range file.Collections {
		c, err := reconstructCollection(rec)
		if err != nil {
			return nil, fmt.Errorf("collections[%d]: %w", i, err)
		}
		ds.Collections = append(ds.Collections, c)
	}

	return ds, nil
}

// Save writes the dataset to path as indented JSON.
func Save(path string, ds *Dataset) error {
	file := fileFormat{
		Artifacts:     make([]artifactRecord, 0, len(ds.Artifacts)),
		Relationships: make([]relationshipRecord, 0, len(ds.Relationships)),
		Collections:   make([]collectionRecord, 0, len(ds.Collections)),
	}

	for _, a := range ds.Artifacts {
		file.Artifacts = append(file.Artifacts, artifactToRecord(a))
	}
	for _, r := range ds.Relationships {
		file.Relationships = append(file.Relationships, relationshipToRecord(r))
	}
	for _, c := range ds.Collections {
		file.Collections = append(file.Collections, collectionToRecord(c))
	}

	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}

func reconstructArtifact(rec artifactRecord) (*artifact.Artifact, error) {
	id, err := shared.ParseArtifactID(rec.ID)
	if err != nil {
		return nil, err
	}
	title, err := shared.NewTitle(rec.Title)
	if err != nil {
		return nil, err
	}

	artifactType := artifact.Type(rec.Type)
	if !artifactType.IsValid() {
		return nil, shared.ErrInvalidArtifactType
	}

	collectionIDs := make([]shared.CollectionID, 0, len(rec.CollectionIDs))
	for _, raw := range rec.CollectionIDs {
		cid, err := shared.ParseCollectionID(raw)
		if err != nil {
			return nil, err
		}
		collectionIDs = append(collectionIDs, cid)
	}

	modifiedAt := rec.ModifiedAt
	if modifiedAt.Before(rec.CreatedAt) {
		modifiedAt = rec.CreatedAt
	}

	return artifact.Reconstruct(id, artifactType, title, rec.Description,
		rec.Content, rec.URL, rec.Thumbnail, shared.NewTags(rec.Tags...),
		collectionIDs, rec.CreatedAt, modifiedAt, rec.CreatedBy, rec.Metadata), nil
}

func reconstructRelationship(rec relationshipRecord) (*relationship.Relationship, error) {
	id, err := shared.ParseRelationshipID(rec.ID)
	if err != nil {
		return nil, err
	}
	sourceID, err := shared.ParseArtifactID(rec.SourceID)
	if err != nil {
		return nil, err
	}
	targetID, err := shared.ParseArtifactID(rec.TargetID)
	if err != nil {
		return nil, err
	}

	relType := relationship.Type(rec.Type)
	if !relType.IsValid() {
		return nil, shared.ErrInvalidRelationshipType
	}

	confidence := shared.NoConfidence()
	if rec.Confidence != nil {
		confidence, err = shared.NewConfidence(*rec.Confidence)
		if err != nil {
			return nil, err
		}
	}

	return relationship.Reconstruct(id, sourceID, targetID, relType,
		confidence, rec.Notes, rec.CreatedAt, rec.CreatedBy), nil
}

func reconstructCollection(rec collectionRecord) (*collection.Collection, error) {
	id, err := shared.ParseCollectionID(rec.ID)
	if err != nil {
		return nil, err
	}
	collectionType := collection.Type(rec.Type)
	if !collectionType.IsValid() {
		return nil, shared.ErrInvalidCollectionType
	}
	if rec.Name == "" {
		return nil, shared.ErrEmptyCollectionName
	}

	var parentID *shared.CollectionID
	if rec.ParentID != nil {
		pid, err := shared.ParseCollectionID(*rec.ParentID)
		if err != nil {
			return nil, err
		}
		parentID = &pid
	}

	return collection.Reconstruct(id, rec.Name, collectionType, parentID,
		rec.Color, rec.Icon, rec.Description, rec.CreatedAt, rec.Order), nil
}

func artifactToRecord(a *artifact.Artifact) artifactRecord {
	collectionIDs := make([]string, 0, len(a.CollectionIDs))
	for _, id := range a.CollectionIDs {
		collectionIDs = append(collectionIDs, id.String())
	}
	return artifactRecord{
		ID:            a.ID.String(),
		Type:          string(a.Type),
		Title:         a.Title.String(),
		Description:   a.Description,
		Content:       a.Content,
		URL:           a.URL,
		Thumbnail:     a.Thumbnail,
		Tags:          a.Tags.ToSlice(),
		CollectionIDs: collectionIDs,
		CreatedAt:     a.CreatedAt,
		ModifiedAt:    a.ModifiedAt,
		CreatedBy:     a.CreatedBy,
		Metadata:      a.Metadata,
	}
}

func relationshipToRecord(r *relationship.Relationship) relationshipRecord {
	var confidence *int
	if r.Confidence.IsSet() {
		v := r.Confidence.Value()
		confidence = &v
	}
	return relationshipRecord{
		ID:         r.ID.String(),
		SourceID:   r.SourceID.String(),
		TargetID:   r.TargetID.String(),
		Type:       string(r.Type),
		Confidence: confidence,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		CreatedBy:  r.CreatedBy,
	}
}

func collectionToRecord(c *collection.Collection) collectionRecord {
	var parentID *string
	if c.ParentID != nil {
		v := c.ParentID.String()
		parentID = &v
	}
	return collectionRecord{
		ID:          c.ID.String(),
		Name:        c.Name,
		Type:        string(c.Type),
		ParentID:    parentID,
		Color:       c.Color,
		Icon:        c.Icon,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		Order:       c.Order,
	}
}
