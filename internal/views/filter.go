// Package views produces the pure view models behind each presentation of
// the canvas: the filtered/sorted grid list, the timeline grouping, the
// interactive relationship graph, and the Mermaid diagram export. Every
// function here is pure; rendering and delivery stay with the caller.
package views

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/shared"
)

// Criteria narrows an artifact list. All fields are optional and combine
// with logical AND; the zero value matches everything.
type Criteria struct {
	// Query matches case-insensitively as a substring of the title,
	// description, content, or any tag.
	Query string

	// Types, when non-empty, requires the artifact's type to be a member.
	Types []artifact.Type

	// Tags, when non-empty, requires at least one shared tag (OR within).
	Tags []string

	// CollectionID, when set, requires direct membership.
	CollectionID *shared.CollectionID

	// CreatedAfter / CreatedBefore bound CreatedAt inclusively.
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// IsZero reports whether no criterion is active.
func (c Criteria) IsZero() bool {
	return c.Query == "" && len(c.Types) == 0 && len(c.Tags) == 0 &&
		c.CollectionID == nil && c.CreatedAfter == nil && c.CreatedBefore == nil
}

// SortKey selects the ordering of a sorted artifact list
type SortKey string

const (
	SortByCreated  SortKey = "created"  // newest first
	SortByModified SortKey = "modified" // most recently modified first
	SortByTitle    SortKey = "title"    // locale-aware ascending
	SortByType     SortKey = "type"     // type name ascending
)

// FilterArtifacts returns the artifacts satisfying every active criterion,
// preserving input order. The input slice is never mutated.
func FilterArtifacts(artifacts []*artifact.Artifact, criteria Criteria) []*artifact.Artifact {
	result := make([]*artifact.Artifact, 0, len(artifacts))
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	for _, a := range artifacts {
		if !matchesQuery(a, query) {
			continue
		}
		if !matchesTypes(a, criteria.Types) {
			continue
		}
		if !matchesTags(a, criteria.Tags) {
			continue
		}
		if criteria.CollectionID != nil && !a.InCollection(*criteria.CollectionID) {
			continue
		}
		if criteria.CreatedAfter != nil && a.CreatedAt.Before(*criteria.CreatedAfter) {
			continue
		}
		if criteria.CreatedBefore != nil && a.CreatedAt.After(*criteria.CreatedBefore) {
			continue
		}
		result = append(result, a)
	}

	return result
}

func matchesQuery(a *artifact.Artifact, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a.Title.String()), query) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Description), query) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Content), query) {
		return true
	}
	return a.Tags.ContainsSubstring(query)
}

func matchesTypes(a *artifact.Artifact, types []artifact.Type) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if a.Type == t {
			return true
		}
	}
	return false
}

func matchesTags(a *artifact.Artifact, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if a.Tags.Contains(tag) {
			return true
		}
	}
	return false
}

// SortArtifacts returns a new slice ordered by the given key. The sort is
// stable: ties keep their input-relative order. Unknown keys fall back to
// SortByCreated.
func SortArtifacts(artifacts []*artifact.Artifact, key SortKey) []*artifact.Artifact {
	result := make([]*artifact.Artifact, len(artifacts))
	copy(result, artifacts)

	switch key {
	case SortByModified:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ModifiedAt.After(result[j].ModifiedAt)
		})
	case SortByTitle:
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(result, func(i, j int) bool {
			return c.CompareString(result[i].Title.String(), result[j].Title.String()) < 0
		})
	case SortByType:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Type < result[j].Type
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return result
}
