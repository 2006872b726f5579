package dto

// ErrorResponseDTO is the shared error response shape.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"summary_not_found"`
}

// FieldErrorDTO describes a single invalid request field.
type FieldErrorDTO struct {
	Field   string `json:"field" example:"url"`
	Message string `json:"message" example:"must be a valid absolute URL"`
}

// ValidationErrorDTO is returned for malformed input, with field-level detail.
type ValidationErrorDTO struct {
	Error  string          `json:"error" example:"validation_failed"`
	Fields []FieldErrorDTO `json:"fields"`
}
