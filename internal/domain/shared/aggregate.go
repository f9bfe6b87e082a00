package shared

// AggregateRoot is implemented by every entity that owns its consistency
// boundary and records domain events.
type AggregateRoot interface {
	// GetID returns the unique identifier of the aggregate
	GetID() string

	// ValidateInvariants checks all business rules are satisfied
	ValidateInvariants() error

	// EventAggregate interface for event management
	EventAggregate
}

// EventAggregate manages the uncommitted domain events of an aggregate.
type EventAggregate interface {
	GetUncommittedEvents() []DomainEvent
	MarkEventsAsCommitted()
}

// BaseAggregateRoot provides common functionality for all aggregate roots
type BaseAggregateRoot struct {
	id     string
	events []DomainEvent
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot(id string) BaseAggregateRoot {
	return BaseAggregateRoot{
		id:     id,
		events: []DomainEvent{},
	}
}

// GetID returns the aggregate ID
func (a *BaseAggregateRoot) GetID() string {
	return a.id
}

// AddEvent adds a domain event to the aggregate
func (a *BaseAggregateRoot) AddEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// GetUncommittedEvents returns events that haven't been persisted
func (a *BaseAggregateRoot) GetUncommittedEvents() []DomainEvent {
	return a.events
}

// MarkEventsAsCommitted clears uncommitted events after persistence
func (a *BaseAggregateRoot) MarkEventsAsCommitted() {
	a.events = []DomainEvent{}
}
