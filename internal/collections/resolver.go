// Package collections resolves the folder/tag taxonomy: partitioning, root
// and child listings, per-collection artifact counts, and structural
// validation of the folder hierarchy.
package collections

import (
	"sort"

	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/collection"
	"canvas-engine/internal/domain/shared"
)

// Problem describes one structurally invalid folder found during resolution.
type Problem struct {
	CollectionID shared.CollectionID
	Reason       ProblemReason
}

// ProblemReason classifies a structural problem
type ProblemReason string

const (
	// ReasonCycle marks a folder that is its own ancestor through ParentID links
	ReasonCycle ProblemReason = "cycle"
	// ReasonDanglingParent marks a folder whose ParentID references no known folder
	ReasonDanglingParent ProblemReason = "dangling-parent"
)

// Resolver answers hierarchy and membership questions over an immutable
// snapshot of the collection and artifact lists. Build a new resolver when
// the underlying data changes.
//
// Folders on a ParentID cycle are excluded from every traversal answer and
// reported via Problems, never silently walked. Folders with a dangling
// parent reference are reported and treated as roots so their subtrees stay
// reachable.
type Resolver struct {
	byID     map[shared.CollectionID]*collection.Collection
	folders  []*collection.Collection
	tags     []*collection.Collection
	roots    []*collection.Collection
	children map[shared.CollectionID][]*collection.Collection
	counts   map[shared.CollectionID]int
	invalid  map[shared.CollectionID]bool
	problems []Problem
}

// NewResolver builds a resolver from the full collection and artifact lists.
func NewResolver(cols []*collection.Collection, artifacts []*artifact.Artifact) *Resolver {
	r := &Resolver{
		byID:     make(map[shared.CollectionID]*collection.Collection, len(cols)),
		children: make(map[shared.CollectionID][]*collection.Collection),
		counts:   make(map[shared.CollectionID]int, len(cols)),
		invalid:  make(map[shared.CollectionID]bool),
	}

	for _, c := range cols {
		r.byID[c.ID] = c
		if c.IsFolder() {
			r.folders = append(r.folders, c)
		} else {
			r.tags = append(r.tags, c)
		}
	}

	r.detectCycles()
	r.buildTree()
	r.countArtifacts(artifacts)

	return r
}

// detectCycles classifies every folder by walking its ancestor chain.
// A folder is on a cycle when the walk revisits it; a folder below a cycle
// is invalid too because its chain never reaches a root.
func (r *Resolver) detectCycles() {
	const (
		unvisited = 0
		inProgress = 1
		valid     = 2
		broken    = 3
	)
	state := make(map[shared.CollectionID]int, len(r.folders))

	var visit func(c *collection.Collection) int
	visit = func(c *collection.Collection) int {
		switch state[c.ID] {
		case valid, broken:
			return state[c.ID]
		case inProgress:
			// Revisited while walking up: c closes a cycle
			state[c.ID] = broken
			r.problems = append(r.problems, Problem{CollectionID: c.ID, Reason: ReasonCycle})
			return broken
		}

		state[c.ID] = inProgress

		if c.ParentID == nil {
			state[c.ID] = valid
			return valid
		}

		parent, ok := r.byID[*c.ParentID]
		if !ok || !parent.IsFolder() {
			// Dangling reference: report, then treat as a root
			state[c.ID] = valid
			r.problems = append(r.problems, Problem{CollectionID: c.ID, Reason: ReasonDanglingParent})
			return valid
		}

		result := visit(parent)
		if state[c.ID] == broken {
			// Marked while unwinding the cycle
			return broken
		}
		if result == broken {
			state[c.ID] = broken
			r.problems = append(r.problems, Problem{CollectionID: c.ID, Reason: ReasonCycle})
			return broken
		}
		state[c.ID] = valid
		return valid
	}

	for _, c := range r.folders {
		visit(c)
	}
	for id, s := range state {
		if s == broken {
			r.invalid[id] = true
		}
	}
}

// buildTree computes roots and ordered child lists from the valid folders.
func (r *Resolver) buildTree() {
	for _, c := range r.folders {
		if r.invalid[c.ID] {
			continue
		}
		if c.ParentID == nil || !r.hasValidParent(c) {
			r.roots = append(r.roots, c)
			continue
		}
		r.children[*c.ParentID] = append(r.children[*c.ParentID], c)
	}

	byOrder := func(cs []*collection.Collection) {
		sort.SliceStable(cs, func(i, j int) bool {
			return cs[i].Order < cs[j].Order
		})
	}

	byOrder(r.roots)
	for _, cs := range r.children {
		byOrder(cs)
	}
}

// hasValidParent reports whether the folder's parent exists and is a valid folder.
func (r *Resolver) hasValidParent(c *collection.Collection) bool {
	parent, ok := r.byID[*c.ParentID]
	return ok && parent.IsFolder() && !r.invalid[parent.ID]
}

// countArtifacts tallies direct membership per collection.
func (r *Resolver) countArtifacts(artifacts []*artifact.Artifact) {
	for _, a := range artifacts {
		for _, id := range a.CollectionIDs {
			r.counts[id]++
		}
	}
}

// Folders returns every folder-type collection, valid or not.
func (r *Resolver) Folders() []*collection.Collection {
	return r.folders
}

// Tags returns every tag-type collection.
func (r *Resolver) Tags() []*collection.Collection {
	return r.tags
}

// Roots returns valid root folders ordered by their Order key. Folders with
// a dangling parent reference appear here so they remain reachable.
func (r *Resolver) Roots() []*collection.Collection {
	return r.roots
}

// Children returns the direct children of a folder, ordered by their Order key.
func (r *Resolver) Children(id shared.CollectionID) []*collection.Collection {
	return r.children[id]
}

// ArtifactCount returns the number of artifacts directly in the collection.
// It never recurses into child folders.
func (r *Resolver) ArtifactCount(id shared.CollectionID) int {
	return r.counts[id]
}

// SubtreeCount returns the direct count plus the counts of every valid
// descendant folder, for callers that want the recursive number.
func (r *Resolver) SubtreeCount(id shared.CollectionID) int {
	total := r.counts[id]
	for _, child := range r.children[id] {
		total += r.SubtreeCount(child.ID)
	}
	return total
}

// IsValid reports whether the folder is structurally sound. Tags and unknown
// ids are valid by definition; only cycle members are invalid.
func (r *Resolver) IsValid(id shared.CollectionID) bool {
	return !r.invalid[id]
}

// Problems returns every structural problem found during resolution.
func (r *Resolver) Problems() []Problem {
	return r.problems
}

// WouldCreateCycle reports whether re-parenting child under newParent would
// make child its own ancestor. Used to validate hierarchy edits before they
// are applied.
func (r *Resolver) WouldCreateCycle(child, newParent shared.CollectionID) bool {
	if child == newParent {
		return true
	}
	seen := map[shared.CollectionID]bool{child: true}
	current := newParent
	for {
		if seen[current] {
			return true
		}
		seen[current] = true

		c, ok := r.byID[current]
		if !ok || c.ParentID == nil {
			return false
		}
		current = *c.ParentID
	}
}
