package entity

import "time"

// Supplier representa un proveedor de materia prima.
// El core nunca desreferencia su contenido: los ítems lo apuntan por ID.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	LeadTimeDays  int // días de entrega estimados
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
