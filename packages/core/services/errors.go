package services

// Machine-readable conflict codes returned to the uploader.
const (
	CodeDuplicateMappingOtherAccount = "DUPLICATE_MAPPING_OTHER_ACCOUNT"
	CodeAlreadyMappedToDifferentData = "ALREADY_MAPPED_TO_DIFFERENT_DATA"
)

// ConflictError is a definitive business-rule rejection of an identity
// linkage. It is not retriable and maps to HTTP 409.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NotFoundError maps to HTTP 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}
