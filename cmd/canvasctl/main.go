// canvasctl loads a dataset file, builds the requested view over it, and
// writes the result to stdout or a file. It is the host around the engine:
// the engine owns the data model and the view production, canvasctl owns IO.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"canvas-engine/internal/config"
	"canvas-engine/internal/dataset"
	"canvas-engine/internal/domain/shared"
	"canvas-engine/internal/observability"
	"canvas-engine/internal/repository/memory"
	"canvas-engine/internal/service/canvas"
	"canvas-engine/internal/views"
)

func main() {
	var (
		dataPath   = flag.String("data", "", "path to the dataset JSON file (required)")
		configPath = flag.String("config", "", "path to a canvas config file (yaml or json)")
		view       = flag.String("view", "diagram", "view to build: grid, timeline, graph, diagram, collections")
		query      = flag.String("query", "", "search query for the grid and timeline views")
		sortBy     = flag.String("sort", "created", "grid sort key: created, modified, title, type")
		outPath    = flag.String("out", "", "output file; stdout when empty")
	)
	flag.Parse()

	if *dataPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	out, err := run(cfg, logger, *dataPath, *view, *query, views.SortKey(*sortBy))
	if err != nil {
		logger.Fatal("canvasctl failed", zap.Error(err))
	}

	if *outPath == "" {
		fmt.Print(out)
		return
	}
	if err := os.WriteFile(*outPath, []byte(out), 0o644); err != nil {
		logger.Fatal("failed to write output", zap.Error(err))
	}
	logger.Info("output written", zap.String("path", *outPath))
}

func run(cfg *config.Config, logger *zap.Logger, dataPath, view, query string, sortBy views.SortKey) (string, error) {
	ctx := context.Background()

	ds, err := dataset.Load(dataPath)
	if err != nil {
		return "", err
	}
	logger.Info("dataset loaded",
		zap.Int("artifacts", len(ds.Artifacts)),
		zap.Int("relationships", len(ds.Relationships)),
		zap.Int("collections", len(ds.Collections)))

	repo := memory.New()
	for _, a := range ds.Artifacts {
		if err := repo.SaveArtifact(ctx, a); err != nil {
			return "", fmt.Errorf("artifact %s: %w", a.ID, err)
		}
	}
	for _, r := range ds.Relationships {
		if err := repo.SaveRelationship(ctx, r); err != nil {
			return "", fmt.Errorf("relationship %s: %w", r.ID, err)
		}
	}
	for _, c := range ds.Collections {
		if err := repo.SaveCollection(ctx, c); err != nil {
			return "", fmt.Errorf("collection %s: %w", c.ID, err)
		}
	}

	svc := canvas.New(repo, canvas.Options{
		Graph: views.GraphOptions{
			RowWidth:      cfg.Graph.RowWidth,
			CellWidth:     cfg.Graph.CellWidth,
			CellHeight:    cfg.Graph.CellHeight,
			StrongAbove:   cfg.Graph.StrongAbove,
			ModerateAbove: cfg.Graph.ModerateAbove,
		},
		TimelineZone: cfg.TimelineZone(),
	}, canvas.Hooks{}, logger, observability.NewCollector("canvas"))

	criteria := views.Criteria{Query: query}

	switch view {
	case "grid":
		artifacts, err := svc.ArtifactView(ctx, criteria, sortBy)
		if err != nil {
			return "", err
		}
		return toJSON(artifacts)
	case "timeline":
		tl, err := svc.TimelineView(ctx, criteria)
		if err != nil {
			return "", err
		}
		return toJSON(tl)
	case "graph":
		g, err := svc.GraphView(ctx)
		if err != nil {
			return "", err
		}
		return toJSON(g)
	case "diagram":
		return svc.ExportDiagram(ctx)
	case "collections":
		return collectionsReport(ctx, svc)
	default:
		return "", fmt.Errorf("unknown view %q", view)
	}
}

// collectionsReport renders the folder tree with per-collection counts.
func collectionsReport(ctx context.Context, svc *canvas.Service) (string, error) {
	resolver, err := svc.ResolveCollections(ctx)
	if err != nil {
		return "", err
	}

	type node struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Count    int    `json:"count"`
		Subtree  int    `json:"subtree"`
		Children []node `json:"children,omitempty"`
	}

	var build func(id shared.CollectionID, name string) node
	build = func(id shared.CollectionID, name string) node {
		n := node{
			ID:      id.String(),
			Name:    name,
			Count:   resolver.ArtifactCount(id),
			Subtree: resolver.SubtreeCount(id),
		}
		for _, child := range resolver.Children(id) {
			n.Children = append(n.Children, build(child.ID, child.Name))
		}
		return n
	}

	roots := make([]node, 0)
	for _, r := range resolver.Roots() {
		roots = append(roots, build(r.ID, r.Name))
	}
	return toJSON(roots)
}

func toJSON(v interface{}) (string, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw) + "\n", nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}

	zapCfg := zap.NewProductionConfig()
	if level, err := zap.ParseAtomicLevel(cfg.Logging.Level); err == nil {
		zapCfg.Level = level
	}
	return zapCfg.Build()
}
