package model

// Status is a fixed reference entity. Rows are seeded out-of-band (cmd/seed)
// and read-only from the API's perspective.
type Status struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"size:255;not null"`
	Description    string `json:"description" gorm:"size:255"`
	IdentifierCode string `json:"identifier_code" gorm:"uniqueIndex;size:100;not null"`
}
