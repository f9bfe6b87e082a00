// Package canvas is the mutation boundary of the engine. The view-producing
// packages stay pure; every create, update, and delete flows through the
// Service here, which owns validation, cascade rules, hooks, and telemetry.
package canvas

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"canvas-engine/internal/collections"
	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/collection"
	"canvas-engine/internal/domain/relationship"
	"canvas-engine/internal/domain/shared"
	"canvas-engine/internal/errors"
	"canvas-engine/internal/observability"
	"canvas-engine/internal/repository"
	"canvas-engine/internal/views"
)

// Hooks are optional callbacks invoked after successful mutations. Nil hooks
// are skipped. Callbacks run synchronously on the mutating goroutine.
type Hooks struct {
	OnArtifactCreate     func(*artifact.Artifact)
	OnArtifactUpdate     func(*artifact.Artifact)
	OnArtifactDelete     func(id shared.ArtifactID, cascaded int)
	OnRelationshipCreate func(*relationship.Relationship)
	OnRelationshipDelete func(id shared.RelationshipID)
}

// Options carries the view-production knobs the service passes through to
// the builders.
type Options struct {
	Graph views.GraphOptions
	// TimelineZone is the zone for calendar-day bucketing; nil means UTC
	TimelineZone *time.Location
}

// Service implements the engine's write operations and the thin read side
// over the view builders.
type Service struct {
	repo     repository.Repository
	opts     Options
	hooks    Hooks
	validate *validator.Validate
	logger   *zap.Logger
	metrics  *observability.Collector
}

// New creates a canvas service. A nil logger is replaced by a no-op logger;
// metrics may be nil.
func New(repo repository.Repository, opts Options, hooks Hooks, logger *zap.Logger, metrics *observability.Collector) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:     repo,
		opts:     opts,
		hooks:    hooks,
		validate: validator.New(),
		logger:   logger,
		metrics:  metrics,
	}
}

// CreateArtifact validates the request, builds the aggregate, and persists it.
func (s *Service) CreateArtifact(ctx context.Context, req CreateArtifactRequest) (*artifact.Artifact, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidRequest(err)
	}

	a, err := artifact.New(artifact.Type(req.Type), req.Title, req.CreatedBy, shared.NewTags(req.Tags...))
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		a.UpdateDescription(req.Description)
	}
	if req.Content != "" {
		a.UpdateContent(req.Content)
	}
	if req.URL != "" {
		a.SetURL(req.URL)
	}
	for _, id := range req.CollectionIDs {
		collectionID, err := shared.ParseCollectionID(id)
		if err != nil {
			return nil, err
		}
		if _, err := s.repo.FindCollection(ctx, collectionID); err != nil {
			return nil, err
		}
		a.AddToCollection(collectionID)
	}

	if err := s.repo.SaveArtifact(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("artifact created",
		zap.String("artifact_id", a.ID.String()),
		zap.String("type", string(a.Type)))
	if s.metrics != nil {
		s.metrics.ArtifactsCreated.Inc()
	}
	if s.hooks.OnArtifactCreate != nil {
		s.hooks.OnArtifactCreate(a)
	}
	return a, nil
}

// UpdateArtifact applies the non-nil fields of the request.
func (s *Service) UpdateArtifact(ctx context.Context, req UpdateArtifactRequest) (*artifact.Artifact, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidRequest(err)
	}

	id, err := shared.ParseArtifactID(req.ID)
	if err != nil {
		return nil, err
	}
	a, err := s.repo.FindArtifact(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := a.UpdateTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		a.UpdateDescription(*req.Description)
	}
	if req.Content != nil {
		a.UpdateContent(*req.Content)
	}
	if req.URL != nil {
		a.SetURL(*req.URL)
	}
	if req.Tags != nil {
		a.SetTags(shared.NewTags(*req.Tags...))
	}

	if err := s.repo.SaveArtifact(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("artifact updated", zap.String("artifact_id", a.ID.String()))
	if s.hooks.OnArtifactUpdate != nil {
		s.hooks.OnArtifactUpdate(a)
	}
	return a, nil
}

// DeleteArtifact removes the artifact and cascades to its relationships,
// returning how many relationships were removed.
func (s *Service) DeleteArtifact(ctx context.Context, id shared.ArtifactID) (int, error) {
	cascaded, err := s.repo.DeleteArtifact(ctx, id)
	if err != nil {
		return 0, err
	}

	s.logger.Info("artifact deleted",
		zap.String("artifact_id", id.String()),
		zap.Int("cascaded_relationships", cascaded))
	if s.metrics != nil {
		s.metrics.ArtifactsDeleted.Inc()
		s.metrics.CascadedRelationshipDeletes.Add(float64(cascaded))
		s.metrics.RelationshipsDeleted.Add(float64(cascaded))
	}
	if s.hooks.OnArtifactDelete != nil {
		s.hooks.OnArtifactDelete(id, cascaded)
	}
	return cascaded, nil
}

// CreateRelationship validates the request, checks both endpoints exist, and
// persists the relationship. Self-links are rejected by the aggregate.
func (s *Service) CreateRelationship(ctx context.Context, req CreateRelationshipRequest) (*relationship.Relationship, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidRequest(err)
	}

	sourceID, err := shared.ParseArtifactID(req.SourceID)
	if err != nil {
		return nil, err
	}
	targetID, err := shared.ParseArtifactID(req.TargetID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.FindArtifact(ctx, sourceID); err != nil {
		return nil, shared.ErrDanglingReference
	}
	if _, err := s.repo.FindArtifact(ctx, targetID); err != nil {
		return nil, shared.ErrDanglingReference
	}

	confidence := shared.NoConfidence()
	if req.Confidence != nil {
		confidence, err = shared.NewConfidence(*req.Confidence)
		if err != nil {
			return nil, err
		}
	}

	rel, err := relationship.New(sourceID, targetID, relationship.Type(req.Type), confidence, req.CreatedBy)
	if err != nil {
		return nil, err
	}
	rel.Notes = req.Notes

	if err := s.repo.SaveRelationship(ctx, rel); err != nil {
		return nil, err
	}

	s.logger.Info("relationship created",
		zap.String("relationship_id", rel.ID.String()),
		zap.String("type", string(rel.Type)))
	if s.metrics != nil {
		s.metrics.RelationshipsCreated.Inc()
	}
	if s.hooks.OnRelationshipCreate != nil {
		s.hooks.OnRelationshipCreate(rel)
	}
	return rel, nil
}

// DeleteRelationship removes one relationship.
func (s *Service) DeleteRelationship(ctx context.Context, id shared.RelationshipID) error {
	if err := s.repo.DeleteRelationship(ctx, id); err != nil {
		return err
	}

	s.logger.Info("relationship deleted", zap.String("relationship_id", id.String()))
	if s.metrics != nil {
		s.metrics.RelationshipsDeleted.Inc()
	}
	if s.hooks.OnRelationshipDelete != nil {
		s.hooks.OnRelationshipDelete(id)
	}
	return nil
}

// CreateCollection validates the request and persists the collection. A
// parent, when given, must exist and must not be a tag.
func (s *Service) CreateCollection(ctx context.Context, req CreateCollectionRequest) (*collection.Collection, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, invalidRequest(err)
	}

	c, err := collection.New(collection.Type(req.Type), req.Name, req.CreatedBy)
	if err != nil {
		return nil, err
	}
	c.Color = req.Color
	c.Icon = req.Icon

	if req.ParentID != nil {
		parentID, err := shared.ParseCollectionID(*req.ParentID)
		if err != nil {
			return nil, err
		}
		parent, err := s.repo.FindCollection(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if !parent.IsFolder() {
			return nil, shared.ErrTagCannotHaveParent
		}
		if err := c.SetParent(&parentID, req.CreatedBy); err != nil {
			return nil, err
		}
	}

	if err := s.repo.SaveCollection(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("collection created",
		zap.String("collection_id", c.ID.String()),
		zap.String("type", string(c.Type)))
	if s.metrics != nil {
		s.metrics.CollectionsCreated.Inc()
	}
	return c, nil
}

// MoveCollection re-parents a folder. The move is rejected when the new
// parent does not exist or when it would make the folder its own ancestor.
func (s *Service) MoveCollection(ctx context.Context, id shared.CollectionID, newParentID *shared.CollectionID, actor string) error {
	c, err := s.repo.FindCollection(ctx, id)
	if err != nil {
		return err
	}

	if newParentID != nil {
		parent, err := s.repo.FindCollection(ctx, *newParentID)
		if err != nil {
			return err
		}
		if !parent.IsFolder() {
			return shared.ErrTagCannotHaveParent
		}

		cols, err := s.repo.ListCollections(ctx)
		if err != nil {
			return err
		}
		resolver := collections.NewResolver(cols, nil)
		if resolver.WouldCreateCycle(id, *newParentID) {
			return shared.ErrCircularReference
		}
	}

	if err := c.SetParent(newParentID, actor); err != nil {
		return err
	}
	if err := s.repo.SaveCollection(ctx, c); err != nil {
		return err
	}

	s.logger.Info("collection moved", zap.String("collection_id", id.String()))
	return nil
}

// DeleteCollection removes the collection; the repository detaches artifact
// memberships and re-roots child folders.
func (s *Service) DeleteCollection(ctx context.Context, id shared.CollectionID) error {
	if err := s.repo.DeleteCollection(ctx, id); err != nil {
		return err
	}
	s.logger.Info("collection deleted", zap.String("collection_id", id.String()))
	return nil
}

// ArtifactView returns the filtered, sorted artifact list.
func (s *Service) ArtifactView(ctx context.Context, criteria views.Criteria, sortBy views.SortKey) ([]*artifact.Artifact, error) {
	started := time.Now()
	all, err := s.repo.ListArtifacts(ctx)
	if err != nil {
		return nil, err
	}

	result := views.SortArtifacts(views.FilterArtifacts(all, criteria), sortBy)
	if s.metrics != nil {
		s.metrics.ObserveViewBuild("grid", time.Since(started))
	}
	return result, nil
}

// TimelineView returns the chronological grouping of the filtered artifacts.
func (s *Service) TimelineView(ctx context.Context, criteria views.Criteria) (views.Timeline, error) {
	started := time.Now()
	all, err := s.repo.ListArtifacts(ctx)
	if err != nil {
		return views.Timeline{}, err
	}

	tl := views.GroupByDate(views.FilterArtifacts(all, criteria), s.opts.TimelineZone)
	if s.metrics != nil {
		s.metrics.ObserveViewBuild("timeline", time.Since(started))
	}
	return tl, nil
}

// GraphView returns the placed relationship graph over all artifacts.
func (s *Service) GraphView(ctx context.Context) (views.Graph, error) {
	started := time.Now()
	artifacts, relationships, err := s.listGraphInputs(ctx)
	if err != nil {
		return views.Graph{}, err
	}

	g := views.BuildGraph(artifacts, relationships, s.opts.Graph)
	if g.Dropped > 0 {
		s.logger.Warn("graph build skipped dangling relationships", zap.Int("dropped", g.Dropped))
	}
	if s.metrics != nil {
		s.metrics.ObserveViewBuild("graph", time.Since(started))
	}
	return g, nil
}

// ExportDiagram renders the full graph as a Mermaid flowchart string.
func (s *Service) ExportDiagram(ctx context.Context) (string, error) {
	started := time.Now()
	artifacts, relationships, err := s.listGraphInputs(ctx)
	if err != nil {
		return "", err
	}

	out := views.ExportMermaid(artifacts, relationships)
	if s.metrics != nil {
		s.metrics.ObserveViewBuild("diagram", time.Since(started))
	}
	return out, nil
}

// ResolveCollections builds a hierarchy resolver over the current data.
func (s *Service) ResolveCollections(ctx context.Context) (*collections.Resolver, error) {
	cols, err := s.repo.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	artifacts, err := s.repo.ListArtifacts(ctx)
	if err != nil {
		return nil, err
	}

	resolver := collections.NewResolver(cols, artifacts)
	for _, p := range resolver.Problems() {
		s.logger.Warn("collection hierarchy problem",
			zap.String("collection_id", p.CollectionID.String()),
			zap.String("reason", string(p.Reason)))
	}
	return resolver, nil
}

func (s *Service) listGraphInputs(ctx context.Context) ([]*artifact.Artifact, []*relationship.Relationship, error) {
	artifacts, err := s.repo.ListArtifacts(ctx)
	if err != nil {
		return nil, nil, err
	}
	relationships, err := s.repo.ListRelationships(ctx)
	if err != nil {
		return nil, nil, err
	}
	return artifacts, relationships, nil
}

func invalidRequest(err error) error {
	return errors.Validation(errors.CodeValidationFailed.String(), "request validation failed").
		WithCause(err).
		Build()
}
