package canvas

// CreateArtifactRequest carries the fields for a new artifact.
type CreateArtifactRequest struct {
	Type          string   `validate:"required"`
	Title         string   `validate:"required,max=255"`
	Description   string   `validate:"max=2000"`
	Content       string   `validate:"-"`
	URL           string   `validate:"omitempty,url"`
	Tags          []string `validate:"max=20,dive,max=50"`
	CollectionIDs []string `validate:"dive,required"`
	CreatedBy     string   `validate:"required"`
}

// UpdateArtifactRequest carries a partial artifact update. Nil fields are
// left untouched.
type UpdateArtifactRequest struct {
	ID          string    `validate:"required"`
	Title       *string   `validate:"omitempty,max=255"`
	Description *string   `validate:"omitempty,max=2000"`
	Content     *string   `validate:"-"`
	URL         *string   `validate:"omitempty,url"`
	Tags        *[]string `validate:"omitempty,max=20,dive,max=50"`
}

// CreateRelationshipRequest carries the fields for a new relationship.
type CreateRelationshipRequest struct {
	SourceID   string `validate:"required"`
	TargetID   string `validate:"required"`
	Type       string `validate:"required"`
	Confidence *int   `validate:"omitempty,min=0,max=100"`
	Notes      string `validate:"max=1000"`
	CreatedBy  string `validate:"required"`
}

// CreateCollectionRequest carries the fields for a new collection.
type CreateCollectionRequest struct {
	Type      string  `validate:"required,oneof=folder tag"`
	Name      string  `validate:"required,max=255"`
	ParentID  *string `validate:"omitempty,min=1"`
	Color     string  `validate:"omitempty,hexcolor"`
	Icon      string  `validate:"-"`
	CreatedBy string  `validate:"required"`
}
