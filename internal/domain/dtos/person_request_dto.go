package dtos

// PersonRequest is the payload for creating or replacing a person.
// It carries only client-settable fields; the id always comes from storage or the URL.
type PersonRequest struct {
	Name      string `json:"name" validate:"notblank"`
	Age       *int   `json:"age" validate:"required,gte=0"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Birthdate string `json:"birthdate,omitempty" validate:"omitempty,datetime=2006-01-02"` // YYYY-MM-DD
}
