package entity

import "time"

// Warehouse representa una bodega física donde se almacena materia prima.
type Warehouse struct {
	ID            string
	Name          string
	Location      string
	ContactPerson string
	ContactPhone  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
