package errors

// ErrorCode identifies a specific failure for programmatic handling.
// Codes are stable strings so callers can switch on them without importing
// the package that produced the error.
type ErrorCode string

const (
	// Artifact codes
	CodeArtifactNotFound   ErrorCode = "ARTIFACT_NOT_FOUND"
	CodeArtifactTitleEmpty ErrorCode = "ARTIFACT_TITLE_EMPTY"
	CodeArtifactInvalidType ErrorCode = "ARTIFACT_INVALID_TYPE"

	// Relationship codes
	CodeRelationshipNotFound ErrorCode = "RELATIONSHIP_NOT_FOUND"
	CodeRelationshipSelfLink ErrorCode = "RELATIONSHIP_SELF_LINK"
	CodeRelationshipDangling ErrorCode = "RELATIONSHIP_DANGLING"
	CodeRelationshipInvalidType ErrorCode = "RELATIONSHIP_INVALID_TYPE"
	CodeConfidenceOutOfRange ErrorCode = "CONFIDENCE_OUT_OF_RANGE"

	// Collection codes
	CodeCollectionNotFound    ErrorCode = "COLLECTION_NOT_FOUND"
	CodeCollectionCycle       ErrorCode = "COLLECTION_CYCLE"
	CodeCollectionInvalidType ErrorCode = "COLLECTION_INVALID_TYPE"
	CodeCollectionTagParent   ErrorCode = "COLLECTION_TAG_PARENT"
	CodeCollectionNameEmpty   ErrorCode = "COLLECTION_NAME_EMPTY"

	// General codes
	CodeInvalidID        ErrorCode = "INVALID_ID"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// String returns the string representation of the error code.
func (c ErrorCode) String() string {
	return string(c)
}
