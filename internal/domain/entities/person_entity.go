package entities

import "time"

// Person represents a person in the system.
// The ID is assigned by the database on insert and never changes afterwards.
type Person struct {
	ID        uint       `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" db:"name" gorm:"not null" validate:"notblank"`
	Age       int        `json:"age" db:"age" gorm:"not null" validate:"gte=0"`
	Email     string     `json:"email,omitempty" db:"email" gorm:"size:255" validate:"omitempty,email"`
	Birthdate *time.Time `json:"birthdate,omitempty" db:"birthdate" gorm:"type:date" validate:"omitempty,notfuture"`
}

// TableName pins the table name so it does not depend on gorm's pluralizer.
func (Person) TableName() string {
	return "people"
}
