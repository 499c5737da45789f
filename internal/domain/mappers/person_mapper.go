package mappers

import (
	"time"

	"person-api/internal/apperrors"
	"person-api/internal/domain/dtos"
	"person-api/internal/domain/entities"
	"person-api/internal/domain/repositories"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// PersonFromRequest copies a request DTO into a new, unsaved Person.
// Input that cannot be represented without guessing is rejected instead of coerced.
func PersonFromRequest(req dtos.PersonRequest) (*entities.Person, error) {
	if req.Age == nil {
		return nil, apperrors.Invalid("age", "Age is mandatory")
	}

	person := &entities.Person{
		Name:  req.Name,
		Age:   *req.Age,
		Email: req.Email,
	}

	if req.Birthdate != "" {
		birthdate, err := time.Parse(DateLayout, req.Birthdate)
		if err != nil {
			return nil, apperrors.Invalid("birthdate", "Birthdate must be a date in YYYY-MM-DD format")
		}
		person.Birthdate = &birthdate
	}

	return person, nil
}

// PersonToResponse copies a stored Person into its response DTO.
func PersonToResponse(person *entities.Person) dtos.PersonResponse {
	resp := dtos.PersonResponse{
		ID:    person.ID,
		Name:  person.Name,
		Age:   person.Age,
		Email: person.Email,
	}
	if person.Birthdate != nil {
		resp.Birthdate = person.Birthdate.Format(DateLayout)
	}
	return resp
}

// PersonsToResponse maps a slice, always returning a non-nil slice so it encodes as [].
func PersonsToResponse(people []*entities.Person) []dtos.PersonResponse {
	out := make([]dtos.PersonResponse, 0, len(people))
	for _, p := range people {
		out = append(out, PersonToResponse(p))
	}
	return out
}

func PageToResponse(page *repositories.PersonPage) dtos.PersonPageResponse {
	return dtos.PersonPageResponse{
		Content:       PersonsToResponse(page.Content),
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages(),
	}
}

// ViolationsToResponse converts validation violations into their wire shape.
func ViolationsToResponse(violations []apperrors.Violation) []dtos.Violation {
	out := make([]dtos.Violation, 0, len(violations))
	for _, v := range violations {
		out = append(out, dtos.Violation{Field: v.Field, Message: v.Message})
	}
	return out
}
