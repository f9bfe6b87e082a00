package shared

import (
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Pre-compiled regular expressions, shared by tag normalization
var (
	// tagSpecialCharsRegex removes special characters from tags
	tagSpecialCharsRegex = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	// tagSpaceRegex replaces runs of whitespace with single hyphens
	tagSpaceRegex = regexp.MustCompile(`\s+`)
)

// ArtifactID is a value object that ensures valid artifact identifiers
type ArtifactID struct {
	value string
}

// NewArtifactID creates a new random ArtifactID
func NewArtifactID() ArtifactID {
	return ArtifactID{value: uuid.New().String()}
}

// ParseArtifactID creates an ArtifactID from a string, validating it is non-empty
func ParseArtifactID(id string) (ArtifactID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ArtifactID{}, ErrInvalidArtifactID
	}
	return ArtifactID{value: id}, nil
}

// String returns the string representation of the ArtifactID
func (id ArtifactID) String() string {
	return id.value
}

// Equals checks if two ArtifactIDs are equal
func (id ArtifactID) Equals(other ArtifactID) bool {
	return id.value == other.value
}

// IsEmpty checks if the ArtifactID is empty
func (id ArtifactID) IsEmpty() bool {
	return id.value == ""
}

// RelationshipID is a value object for relationship identifiers
type RelationshipID struct {
	value string
}

// NewRelationshipID creates a new random RelationshipID
func NewRelationshipID() RelationshipID {
	return RelationshipID{value: uuid.New().String()}
}

// ParseRelationshipID creates a RelationshipID from a string
func ParseRelationshipID(id string) (RelationshipID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RelationshipID{}, ErrInvalidRelationshipID
	}
	return RelationshipID{value: id}, nil
}

// String returns the string representation of the RelationshipID
func (id RelationshipID) String() string {
	return id.value
}

// Equals checks if two RelationshipIDs are equal
func (id RelationshipID) Equals(other RelationshipID) bool {
	return id.value == other.value
}

// IsEmpty checks if the RelationshipID is empty
func (id RelationshipID) IsEmpty() bool {
	return id.value == ""
}

// CollectionID represents the unique identifier for a Collection.
type CollectionID string

// NewCollectionID creates a new random CollectionID
func NewCollectionID() CollectionID {
	return CollectionID(uuid.New().String())
}

// ParseCollectionID parses a string into a CollectionID
func ParseCollectionID(id string) (CollectionID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CollectionID(""), ErrInvalidCollectionID
	}
	return CollectionID(id), nil
}

// String returns the string representation of the CollectionID
func (id CollectionID) String() string {
	return string(id)
}

// Title is a value object with business rules for artifact and collection names
type Title struct {
	value string
}

// NewTitle creates a new Title value object with validation
func NewTitle(value string) (Title, error) {
	value = strings.TrimSpace(value)

	if len(value) == 0 {
		return Title{}, ErrEmptyTitle
	}
	if len(value) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}

	return Title{value: value}, nil
}

// String returns the string representation of the title
func (t Title) String() string {
	return t.value
}

// Equals checks if two Titles have the same value
func (t Title) Equals(other Title) bool {
	return t.value == other.value
}

// Confidence is a value object for relationship strength estimates (0-100).
// It is used only for display emphasis, never for inference.
type Confidence struct {
	value int
	set   bool
}

// WeightClass buckets a confidence value for display styling
type WeightClass string

const (
	WeightStrong   WeightClass = "strong"
	WeightModerate WeightClass = "moderate"
	WeightWeak     WeightClass = "weak"
)

// NewConfidence creates a Confidence value object with range validation
func NewConfidence(value int) (Confidence, error) {
	if value < 0 || value > 100 {
		return Confidence{}, ErrConfidenceOutOfRange
	}
	return Confidence{value: value, set: true}, nil
}

// NoConfidence returns the absent Confidence value
func NoConfidence() Confidence {
	return Confidence{}
}

// Value returns the integer value of the confidence
func (c Confidence) Value() int {
	return c.value
}

// IsSet reports whether a confidence was supplied
func (c Confidence) IsSet() bool {
	return c.set
}

// Class buckets the confidence against the given display thresholds.
// An unset confidence is always weak.
func (c Confidence) Class(strongAbove, moderateAbove int) WeightClass {
	if !c.set {
		return WeightWeak
	}
	switch {
	case c.value > strongAbove:
		return WeightStrong
	case c.value > moderateAbove:
		return WeightModerate
	default:
		return WeightWeak
	}
}

// Equals checks if two Confidence values are equal
func (c Confidence) Equals(other Confidence) bool {
	return c.set == other.set && c.value == other.value
}

// Tags value object for managing artifact tags
type Tags struct {
	tags map[string]bool
}

// NewTags creates a Tags value object from a slice of strings
func NewTags(tags ...string) Tags {
	normalized := make(map[string]bool)
	for _, tag := range tags {
		tag = normalizeTag(tag)
		if isValidTag(tag) {
			normalized[tag] = true
		}
	}
	return Tags{tags: normalized}
}

// Contains checks if a tag exists
func (t Tags) Contains(tag string) bool {
	return t.tags[normalizeTag(tag)]
}

// ContainsSubstring checks if any tag contains the given lowercase substring.
// Used by the filter engine's search criterion.
func (t Tags) ContainsSubstring(sub string) bool {
	for tag := range t.tags {
		if strings.Contains(tag, sub) {
			return true
		}
	}
	return false
}

// ToSlice returns the tags as a sorted slice
func (t Tags) ToSlice() []string {
	result := make([]string, 0, len(t.tags))
	for tag := range t.tags {
		result = append(result, tag)
	}
	sort.Strings(result)
	return result
}

// Add adds a new tag, returning a new Tags value
func (t Tags) Add(tag string) Tags {
	tag = normalizeTag(tag)
	if !isValidTag(tag) {
		return t
	}

	newTags := make(map[string]bool, len(t.tags)+1)
	for existing := range t.tags {
		newTags[existing] = true
	}
	newTags[tag] = true

	return Tags{tags: newTags}
}

// Remove removes a tag, returning a new Tags value
func (t Tags) Remove(tag string) Tags {
	tag = normalizeTag(tag)

	newTags := make(map[string]bool, len(t.tags))
	for existing := range t.tags {
		if existing != tag {
			newTags[existing] = true
		}
	}

	return Tags{tags: newTags}
}

// Intersects checks if any tag is shared with another Tags value
func (t Tags) Intersects(other Tags) bool {
	for tag := range t.tags {
		if other.tags[tag] {
			return true
		}
	}
	return false
}

// Count returns the number of tags
func (t Tags) Count() int {
	return len(t.tags)
}

// IsEmpty checks if there are no tags
func (t Tags) IsEmpty() bool {
	return len(t.tags) == 0
}

// normalizeTag normalizes a tag string
func normalizeTag(tag string) string {
	tag = strings.TrimSpace(strings.ToLower(tag))
	tag = tagSpecialCharsRegex.ReplaceAllString(tag, "")
	tag = tagSpaceRegex.ReplaceAllString(tag, "-")
	return tag
}

// isValidTag checks if a tag is valid
func isValidTag(tag string) bool {
	return len(tag) > 0 && len(tag) <= MaxTagLength
}
