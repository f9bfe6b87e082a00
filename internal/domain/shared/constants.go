package shared

// Validation limits shared across aggregates
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 2000
	MaxTagLength         = 50
	MaxNotesLength       = 1000
)
