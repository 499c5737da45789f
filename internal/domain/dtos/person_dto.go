package dtos

// PersonResponse represents a stored person in API responses.
type PersonResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Email     string `json:"email,omitempty"`
	Birthdate string `json:"birthdate,omitempty"` // Formatted as YYYY-MM-DD
}

// PersonPageResponse is one page of people plus paging metadata.
type PersonPageResponse struct {
	Content       []PersonResponse `json:"content"`
	Page          int              `json:"page"`
	Size          int              `json:"size"`
	TotalElements int64            `json:"total_elements"`
	TotalPages    int              `json:"total_pages"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error      string      `json:"error"`
	Message    string      `json:"message"`
	Violations []Violation `json:"violations,omitempty"`
}

// Violation is one rejected request field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
