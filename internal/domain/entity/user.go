package entity

import "time"

// User representa un usuario que puede registrar movimientos.
// El core trata su ID como referencia opaca (actor_id de un movimiento).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	IsActive     bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
