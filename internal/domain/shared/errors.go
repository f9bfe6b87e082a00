// Package shared provides value objects, domain events, and error definitions
// shared by the artifact, relationship, and collection aggregates.
package shared

import (
	"canvas-engine/internal/errors"
)

// Domain error definitions using the unified error system
var (
	// Artifact errors
	ErrInvalidArtifactID = errors.Validation(errors.CodeInvalidID.String(), "invalid artifact ID").
				WithResource("artifact").
				Build()
	ErrArtifactNotFound = errors.NotFound(errors.CodeArtifactNotFound.String(), "artifact not found").
				WithResource("artifact").
				Build()
	ErrEmptyTitle = errors.Validation(errors.CodeArtifactTitleEmpty.String(), "title cannot be empty").
			WithResource("artifact").
			Build()
	ErrTitleTooLong = errors.Validation(errors.CodeValidationFailed.String(), "title exceeds maximum length").
			WithResource("artifact").
			Build()
	ErrInvalidArtifactType = errors.Validation(errors.CodeArtifactInvalidType.String(), "unknown artifact type").
				WithResource("artifact").
				Build()

	// Relationship errors
	ErrInvalidRelationshipID = errors.Validation(errors.CodeInvalidID.String(), "invalid relationship ID").
					WithResource("relationship").
					Build()
	ErrRelationshipNotFound = errors.NotFound(errors.CodeRelationshipNotFound.String(), "relationship not found").
				WithResource("relationship").
				Build()
	ErrSelfLink = errors.Validation(errors.CodeRelationshipSelfLink.String(), "relationship source and target must differ").
			WithResource("relationship").
			Build()
	ErrDanglingReference = errors.Validation(errors.CodeRelationshipDangling.String(), "relationship references a missing artifact").
				WithResource("relationship").
				Build()
	ErrInvalidRelationshipType = errors.Validation(errors.CodeRelationshipInvalidType.String(), "unknown relationship type").
					WithResource("relationship").
					Build()
	ErrConfidenceOutOfRange = errors.Validation(errors.CodeConfidenceOutOfRange.String(), "confidence must be between 0 and 100").
				WithResource("relationship").
				Build()

	// Collection errors
	ErrInvalidCollectionID = errors.Validation(errors.CodeInvalidID.String(), "invalid collection ID").
				WithResource("collection").
				Build()
	ErrCollectionNotFound = errors.NotFound(errors.CodeCollectionNotFound.String(), "collection not found").
				WithResource("collection").
				Build()
	ErrCircularReference = errors.NewError(errors.ErrorTypeDomain, errors.CodeCollectionCycle.String(), "circular reference detected in folder hierarchy").
				WithResource("collection").
				WithSeverity(errors.SeverityHigh).
				Build()
	ErrTagCannotHaveParent = errors.Validation(errors.CodeCollectionTagParent.String(), "tag collections cannot participate in the hierarchy").
				WithResource("collection").
				Build()
	ErrEmptyCollectionName = errors.Validation(errors.CodeCollectionNameEmpty.String(), "collection name cannot be empty").
				WithResource("collection").
				Build()
	ErrInvalidCollectionType = errors.Validation(errors.CodeCollectionInvalidType.String(), "unknown collection type").
					WithResource("collection").
					Build()

	// General errors
	ErrValidation = errors.Validation(errors.CodeValidationFailed.String(), "validation failed").
			Build()
)

// NewDomainError creates a domain rule violation with an explicit code.
func NewDomainError(code, message string, cause error) error {
	return errors.NewError(errors.ErrorTypeDomain, code, message).
		WithCause(cause).
		Build()
}

// Error type checking helpers

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.IsValidation(err)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return errors.IsNotFound(err)
}

// IsBusinessRuleError checks if an error is a domain rule violation
func IsBusinessRuleError(err error) bool {
	return errors.IsType(err, errors.ErrorTypeDomain)
}
