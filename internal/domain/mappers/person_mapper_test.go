package mappers

import (
	"encoding/json"
	"testing"
	"time"

	"person-api/internal/apperrors"
	"person-api/internal/domain/dtos"
	"person-api/internal/domain/entities"
	"person-api/internal/domain/repositories"
)

func intPtr(i int) *int { return &i }

func TestPersonFromRequest_Success(t *testing.T) {
	req := dtos.PersonRequest{
		Name:      "John Doe",
		Age:       intPtr(30),
		Email:     "john@example.com",
		Birthdate: "1990-01-15",
	}

	person, err := PersonFromRequest(req)
	if err != nil {
		t.Fatalf("PersonFromRequest returned an unexpected error: %v", err)
	}

	if person.ID != 0 {
		t.Errorf("Expected zero ID on a mapped request, got %d", person.ID)
	}
	if person.Name != "John Doe" {
		t.Errorf("Expected Name 'John Doe', got '%s'", person.Name)
	}
	if person.Age != 30 {
		t.Errorf("Expected Age 30, got %d", person.Age)
	}
	if person.Email != "john@example.com" {
		t.Errorf("Expected Email 'john@example.com', got '%s'", person.Email)
	}
	if person.Birthdate == nil || !person.Birthdate.Equal(time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected Birthdate 1990-01-15, got %v", person.Birthdate)
	}
}

func TestPersonFromRequest_AgeRequired(t *testing.T) {
	_, err := PersonFromRequest(dtos.PersonRequest{Name: "John Doe"})
	if err == nil {
		t.Fatalf("PersonFromRequest expected an error for missing age, but got nil")
	}
	if !apperrors.IsValidation(err) {
		t.Errorf("Expected a validation error, got: %v", err)
	}
}

func TestPersonFromRequest_ZeroAgeIsKept(t *testing.T) {
	person, err := PersonFromRequest(dtos.PersonRequest{Name: "Baby", Age: intPtr(0)})
	if err != nil {
		t.Fatalf("PersonFromRequest returned an unexpected error: %v", err)
	}
	if person.Age != 0 {
		t.Errorf("Expected Age 0, got %d", person.Age)
	}
}

func TestPersonFromRequest_BadBirthdate(t *testing.T) {
	_, err := PersonFromRequest(dtos.PersonRequest{Name: "John", Age: intPtr(1), Birthdate: "15/01/1990"})
	if !apperrors.IsValidation(err) {
		t.Fatalf("Expected a validation error for an unparsable birthdate, got: %v", err)
	}
}

func TestPersonToResponse_RoundTrip(t *testing.T) {
	birth := time.Date(1985, time.March, 2, 0, 0, 0, 0, time.UTC)
	person := &entities.Person{ID: 9, Name: "Jane Doe", Age: 39, Email: "jane@example.com", Birthdate: &birth}

	resp := PersonToResponse(person)
	want := dtos.PersonResponse{ID: 9, Name: "Jane Doe", Age: 39, Email: "jane@example.com", Birthdate: "1985-03-02"}
	if resp != want {
		t.Errorf("Expected %+v, got %+v", want, resp)
	}

	back, err := PersonFromRequest(dtos.PersonRequest{Name: resp.Name, Age: intPtr(resp.Age), Email: resp.Email, Birthdate: resp.Birthdate})
	if err != nil {
		t.Fatalf("PersonFromRequest returned an unexpected error: %v", err)
	}
	back.ID = resp.ID
	if back.Name != person.Name || back.Age != person.Age || back.Email != person.Email || !back.Birthdate.Equal(*person.Birthdate) {
		t.Errorf("Round trip changed the person: %+v -> %+v", person, back)
	}
}

func TestPersonToResponse_OmitsEmptyOptionalFields(t *testing.T) {
	raw, err := json.Marshal(PersonToResponse(&entities.Person{ID: 1, Name: "John Doe", Age: 30}))
	if err != nil {
		t.Fatalf("Error marshalling response: %v", err)
	}
	if string(raw) != `{"id":1,"name":"John Doe","age":30}` {
		t.Errorf("Unexpected JSON: %s", raw)
	}
}

func TestPersonsToResponse_EmptyEncodesAsArray(t *testing.T) {
	raw, _ := json.Marshal(PersonsToResponse(nil))
	if string(raw) != "[]" {
		t.Errorf("Expected [], got %s", raw)
	}
}

func TestPageToResponse(t *testing.T) {
	page := &repositories.PersonPage{
		Content:       []*entities.Person{{ID: 3, Name: "C", Age: 3}},
		Page:          1,
		Size:          2,
		TotalElements: 3,
	}

	resp := PageToResponse(page)
	if resp.TotalPages != 2 {
		t.Errorf("Expected 2 total pages, got %d", resp.TotalPages)
	}
	if len(resp.Content) != 1 || resp.Content[0].ID != 3 {
		t.Errorf("Unexpected content: %+v", resp.Content)
	}
}
