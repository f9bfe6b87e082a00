package views

import (
	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/relationship"
	"canvas-engine/internal/domain/shared"
)

// GraphOptions controls node placement and edge styling. Zero values fall
// back to the package defaults.
type GraphOptions struct {
	// RowWidth is the number of nodes per grid row
	RowWidth int
	// CellWidth / CellHeight are the grid cell dimensions in canvas units
	CellWidth  int
	CellHeight int
	// StrongAbove / ModerateAbove are the confidence thresholds for edge
	// weight classes
	StrongAbove   int
	ModerateAbove int
}

const (
	defaultRowWidth      = 5
	defaultCellWidth     = 250
	defaultCellHeight    = 150
	defaultStrongAbove   = 80
	defaultModerateAbove = 40
)

func (o GraphOptions) withDefaults() GraphOptions {
	if o.RowWidth <= 0 {
		o.RowWidth = defaultRowWidth
	}
	if o.CellWidth <= 0 {
		o.CellWidth = defaultCellWidth
	}
	if o.CellHeight <= 0 {
		o.CellHeight = defaultCellHeight
	}
	if o.StrongAbove <= 0 {
		o.StrongAbove = defaultStrongAbove
	}
	if o.ModerateAbove <= 0 {
		o.ModerateAbove = defaultModerateAbove
	}
	return o
}

// GraphNode is one artifact placed on the canvas.
type GraphNode struct {
	ID    shared.ArtifactID `json:"id"`
	Title string            `json:"title"`
	Type  artifact.Type     `json:"type"`
	X     int               `json:"x"`
	Y     int               `json:"y"`
	// RelationshipCount counts edges touching this node in either direction
	RelationshipCount int `json:"relationshipCount"`
}

// GraphEdge is one styled relationship between two placed nodes.
type GraphEdge struct {
	ID       shared.RelationshipID `json:"id"`
	SourceID shared.ArtifactID     `json:"sourceId"`
	TargetID shared.ArtifactID     `json:"targetId"`
	Type     relationship.Type     `json:"type"`
	Label    string                `json:"label"`
	Weight   shared.WeightClass    `json:"weight"`
	// Animated marks progression relationships for flowing-edge rendering
	Animated bool `json:"animated"`
}

// Graph is the relationship view model: placed nodes plus styled edges.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
	// Dropped counts relationships skipped because an endpoint was missing
	// from the artifact list
	Dropped int `json:"dropped"`
}

// BuildGraph produces the graph view model. Nodes keep the input artifact
// order and are placed left to right, top to bottom on a fixed grid. Edges
// whose source or target is not among the artifacts are dropped and counted,
// never rendered half-connected.
func BuildGraph(artifacts []*artifact.Artifact, relationships []*relationship.Relationship, opts GraphOptions) Graph {
	opts = opts.withDefaults()

	index := make(map[shared.ArtifactID]int, len(artifacts))
	nodes := make([]GraphNode, len(artifacts))
	for i, a := range artifacts {
		index[a.ID] = i
		nodes[i] = GraphNode{
			ID:    a.ID,
			Title: a.Title.String(),
			Type:  a.Type,
			X:     (i % opts.RowWidth) * opts.CellWidth,
			Y:     (i / opts.RowWidth) * opts.CellHeight,
		}
	}

	edges := make([]GraphEdge, 0, len(relationships))
	dropped := 0
	for _, r := range relationships {
		src, srcOK := index[r.SourceID]
		dst, dstOK := index[r.TargetID]
		if !srcOK || !dstOK {
			dropped++
			continue
		}

		nodes[src].RelationshipCount++
		nodes[dst].RelationshipCount++

		edges = append(edges, GraphEdge{
			ID:       r.ID,
			SourceID: r.SourceID,
			TargetID: r.TargetID,
			Type:     r.Type,
			Label:    r.Type.Label(),
			Weight:   r.Confidence.Class(opts.StrongAbove, opts.ModerateAbove),
			Animated: r.Type.IsProgression(),
		})
	}

	return Graph{Nodes: nodes, Edges: edges, Dropped: dropped}
}
