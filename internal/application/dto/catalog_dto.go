package dto

import "time"

// CreateSupplierRequest body para POST /api/suppliers/.
type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	LeadTimeDays  int    `json:"lead_time_days" validate:"min=0"`
}

// SupplierResponse representación JSON de un proveedor.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	LeadTimeDays  int       `json:"lead_time_days"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateWarehouseRequest body para POST /api/warehouses/.
type CreateWarehouseRequest struct {
	Name          string `json:"name" validate:"required"`
	Location      string `json:"location"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
}

// WarehouseResponse representación JSON de una bodega.
type WarehouseResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	ContactPhone  string    `json:"contact_phone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
