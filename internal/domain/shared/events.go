package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent represents an important business occurrence in the domain
type DomainEvent interface {
	// EventID returns a unique identifier for this event instance
	EventID() string

	// EventType returns the type of event (e.g., "ArtifactCreated")
	EventType() string

	// AggregateID returns the ID of the aggregate that generated this event
	AggregateID() string

	// Actor returns the identifier of the author who triggered this event
	Actor() string

	// Timestamp returns when the event occurred
	Timestamp() time.Time

	// EventData returns the event-specific data
	EventData() map[string]interface{}
}

// BaseEvent provides common functionality for all domain events
type BaseEvent struct {
	eventID     string
	eventType   string
	aggregateID string
	actor       string
	timestamp   time.Time
}

// EventID returns the unique event identifier
func (e BaseEvent) EventID() string {
	return e.eventID
}

// EventType returns the type of event
func (e BaseEvent) EventType() string {
	return e.eventType
}

// AggregateID returns the aggregate identifier
func (e BaseEvent) AggregateID() string {
	return e.aggregateID
}

// Actor returns the author identifier
func (e BaseEvent) Actor() string {
	return e.actor
}

// Timestamp returns the event timestamp
func (e BaseEvent) Timestamp() time.Time {
	return e.timestamp
}

// NewBaseEvent creates a new base event with common fields
func NewBaseEvent(eventType, aggregateID, actor string) BaseEvent {
	return BaseEvent{
		eventID:     uuid.New().String(),
		eventType:   eventType,
		aggregateID: aggregateID,
		actor:       actor,
		timestamp:   time.Now(),
	}
}

// Artifact events

// ArtifactCreatedEvent is fired when a new artifact is created
type ArtifactCreatedEvent struct {
	BaseEvent
	ArtifactType string
	Title        string
	Tags         Tags
}

// NewArtifactCreatedEvent creates an artifact creation event
func NewArtifactCreatedEvent(id ArtifactID, actor, artifactType, title string, tags Tags) *ArtifactCreatedEvent {
	return &ArtifactCreatedEvent{
		BaseEvent:    NewBaseEvent("ArtifactCreated", id.String(), actor),
		ArtifactType: artifactType,
		Title:        title,
		Tags:         tags,
	}
}

// EventData returns the event-specific data
func (e *ArtifactCreatedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"type":  e.ArtifactType,
		"title": e.Title,
		"tags":  e.Tags.ToSlice(),
	}
}

// ArtifactUpdatedEvent is fired when an artifact's fields change
type ArtifactUpdatedEvent struct {
	BaseEvent
	Field string
}

// NewArtifactUpdatedEvent creates an artifact update event for a single field
func NewArtifactUpdatedEvent(id ArtifactID, actor, field string) *ArtifactUpdatedEvent {
	return &ArtifactUpdatedEvent{
		BaseEvent: NewBaseEvent("ArtifactUpdated", id.String(), actor),
		Field:     field,
	}
}

// EventData returns the event-specific data
func (e *ArtifactUpdatedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{"field": e.Field}
}

// ArtifactDeletedEvent is fired when an artifact is removed
type ArtifactDeletedEvent struct {
	BaseEvent
}

// NewArtifactDeletedEvent creates an artifact deletion event
func NewArtifactDeletedEvent(id ArtifactID, actor string) *ArtifactDeletedEvent {
	return &ArtifactDeletedEvent{
		BaseEvent: NewBaseEvent("ArtifactDeleted", id.String(), actor),
	}
}

// EventData returns the event-specific data
func (e *ArtifactDeletedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{}
}

// Relationship events

// RelationshipCreatedEvent is fired when two artifacts are linked
type RelationshipCreatedEvent struct {
	BaseEvent
	SourceID         ArtifactID
	TargetID         ArtifactID
	RelationshipType string
}

// NewRelationshipCreatedEvent creates a relationship creation event
func NewRelationshipCreatedEvent(id RelationshipID, sourceID, targetID ArtifactID, actor, relType string) *RelationshipCreatedEvent {
	return &RelationshipCreatedEvent{
		BaseEvent:        NewBaseEvent("RelationshipCreated", id.String(), actor),
		SourceID:         sourceID,
		TargetID:         targetID,
		RelationshipType: relType,
	}
}

// EventData returns the event-specific data
func (e *RelationshipCreatedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"sourceId": e.SourceID.String(),
		"targetId": e.TargetID.String(),
		"type":     e.RelationshipType,
	}
}

// RelationshipDeletedEvent is fired when a link is removed, including
// cascade deletions triggered by removing an endpoint artifact.
type RelationshipDeletedEvent struct {
	BaseEvent
	Cascaded bool
}

// NewRelationshipDeletedEvent creates a relationship deletion event
func NewRelationshipDeletedEvent(id RelationshipID, actor string, cascaded bool) *RelationshipDeletedEvent {
	return &RelationshipDeletedEvent{
		BaseEvent: NewBaseEvent("RelationshipDeleted", id.String(), actor),
		Cascaded:  cascaded,
	}
}

// EventData returns the event-specific data
func (e *RelationshipDeletedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{"cascaded": e.Cascaded}
}

// Collection events

// CollectionCreatedEvent is fired when a folder or tag collection is created
type CollectionCreatedEvent struct {
	BaseEvent
	CollectionType string
	Name           string
}

// NewCollectionCreatedEvent creates a collection creation event
func NewCollectionCreatedEvent(id CollectionID, actor, collectionType, name string) *CollectionCreatedEvent {
	return &CollectionCreatedEvent{
		BaseEvent:      NewBaseEvent("CollectionCreated", id.String(), actor),
		CollectionType: collectionType,
		Name:           name,
	}
}

// EventData returns the event-specific data
func (e *CollectionCreatedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{
		"type": e.CollectionType,
		"name": e.Name,
	}
}

// CollectionMovedEvent is fired when a folder is re-parented
type CollectionMovedEvent struct {
	BaseEvent
	NewParentID *CollectionID
}

// NewCollectionMovedEvent creates a collection move event
func NewCollectionMovedEvent(id CollectionID, actor string, newParentID *CollectionID) *CollectionMovedEvent {
	return &CollectionMovedEvent{
		BaseEvent:   NewBaseEvent("CollectionMoved", id.String(), actor),
		NewParentID: newParentID,
	}
}

// EventData returns the event-specific data
func (e *CollectionMovedEvent) EventData() map[string]interface{} {
	data := map[string]interface{}{}
	if e.NewParentID != nil {
		data["parentId"] = e.NewParentID.String()
	}
	return data
}

// CollectionDeletedEvent is fired when a collection is removed
type CollectionDeletedEvent struct {
	BaseEvent
}

// NewCollectionDeletedEvent creates a collection deletion event
func NewCollectionDeletedEvent(id CollectionID, actor string) *CollectionDeletedEvent {
	return &CollectionDeletedEvent{
		BaseEvent: NewBaseEvent("CollectionDeleted", id.String(), actor),
	}
}

// EventData returns the event-specific data
func (e *CollectionDeletedEvent) EventData() map[string]interface{} {
	return map[string]interface{}{}
}
