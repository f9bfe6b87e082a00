package views

import (
	"fmt"
	"strings"

	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/relationship"
	"canvas-engine/internal/domain/shared"
)

// mermaidLabelReplacer strips characters that break Mermaid node syntax
var mermaidLabelReplacer = strings.NewReplacer("[", "", "]", "", `"`, "'")

// ExportMermaid renders the artifact graph as a Mermaid flowchart
// (graph TD). Every artifact becomes a node; every relationship with both
// endpoints present becomes a labelled edge. Edges referencing unknown
// artifacts are silently omitted so the diagram always parses.
//
// Arrow shapes encode the relationship type:
//
//	a1 ==>|Builds On| a2     progression (builds-on, derives-from)
//	a1 -.->|Contradicts| a2  contradicts
//	a1 ---|Related To| a2    related-to (undirected rendering)
//	a1 -->|Cites| a2         everything else
func ExportMermaid(artifacts []*artifact.Artifact, relationships []*relationship.Relationship) string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	ids := make(map[shared.ArtifactID]string, len(artifacts))
	for i, a := range artifacts {
		nodeID := fmt.Sprintf("a%d", i+1)
		ids[a.ID] = nodeID
		fmt.Fprintf(&b, "    %s[\"%s\"]\n", nodeID, sanitizeMermaidLabel(a.Title.String()))
	}

	for _, r := range relationships {
		src, srcOK := ids[r.SourceID]
		dst, dstOK := ids[r.TargetID]
		if !srcOK || !dstOK {
			continue
		}
		fmt.Fprintf(&b, "    %s %s|%s| %s\n", src, arrowFor(r.Type), r.Type.Label(), dst)
	}

	return b.String()
}

func arrowFor(t relationship.Type) string {
	switch {
	case t.IsProgression():
		return "==>"
	case t == relationship.TypeContradicts:
		return "-.->"
	case t == relationship.TypeRelatedTo:
		return "---"
	default:
		return "-->"
	}
}

func sanitizeMermaidLabel(label string) string {
	return strings.TrimSpace(mermaidLabelReplacer.Replace(label))
}
