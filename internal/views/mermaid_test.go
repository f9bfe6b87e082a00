package views

import (
	"strings"
	"testing"

	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/relationship"
	"canvas-engine/internal/domain/shared"
)

func TestExportMermaid(t *testing.T) {
	paper := buildArtifact(artifactSpec{title: "Attention Survey"})
	note := buildArtifact(artifactSpec{title: "Reading notes"})

	out := ExportMermaid(
		[]*artifact.Artifact{paper, note},
		[]*relationship.Relationship{link(note, paper, relationship.TypeCites, shared.NoConfidence())},
	)

	if !strings.HasPrefix(out, "graph TD\n") {
		t.Errorf("output must start with graph TD, got %q", out)
	}
	for _, want := range []string{
		`a1["Attention Survey"]`,
		`a2["Reading notes"]`,
		"a2 -->|Cites| a1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExportMermaid_ArrowShapes(t *testing.T) {
	a := buildArtifact(artifactSpec{title: "a"})
	b := buildArtifact(artifactSpec{title: "b"})

	tests := []struct {
		relType relationship.Type
		want    string
	}{
		{relType: relationship.TypeBuildsOn, want: "a1 ==>|Builds On| a2"},
		{relType: relationship.TypeDerivesFrom, want: "a1 ==>|Derives From| a2"},
		{relType: relationship.TypeContradicts, want: "a1 -.->|Contradicts| a2"},
		{relType: relationship.TypeRelatedTo, want: "a1 ---|Related To| a2"},
		{relType: relationship.TypeReferences, want: "a1 -->|References| a2"},
		{relType: relationship.TypeImplements, want: "a1 -->|Implements| a2"},
	}

	for _, tt := range tests {
		t.Run(string(tt.relType), func(t *testing.T) {
			out := ExportMermaid([]*artifact.Artifact{a, b},
				[]*relationship.Relationship{link(a, b, tt.relType, shared.NoConfidence())})
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestExportMermaid_SanitizesLabels(t *testing.T) {
	tricky := buildArtifact(artifactSpec{title: `Results [draft] "v2"`})

	out := ExportMermaid([]*artifact.Artifact{tricky}, nil)

	if !strings.Contains(out, `a1["Results draft 'v2'"]`) {
		t.Errorf("brackets and quotes must be stripped:\n%s", out)
	}
}

func TestExportMermaid_SkipsDanglingEdges(t *testing.T) {
	a := buildArtifact(artifactSpec{title: "a"})
	ghost := buildArtifact(artifactSpec{title: "ghost"})

	out := ExportMermaid([]*artifact.Artifact{a},
		[]*relationship.Relationship{link(a, ghost, relationship.TypeCites, shared.NoConfidence())})

	if strings.Contains(out, "-->") {
		t.Errorf("dangling edge must be omitted:\n%s", out)
	}
}

func TestExportMermaid_CompletenessOverNodes(t *testing.T) {
	artifacts := []*artifact.Artifact{
		buildArtifact(artifactSpec{title: "one"}),
		buildArtifact(artifactSpec{title: "two"}),
		buildArtifact(artifactSpec{title: "three"}),
	}

	out := ExportMermaid(artifacts, nil)

	// Every artifact appears even with no relationships at all
	lines := strings.Count(out, "\n")
	if lines != 4 {
		t.Errorf("expected header plus 3 node lines, got %d lines:\n%s", lines, out)
	}
}
