package jsonstore

import (
	"errors"

	"github.com/tu-usuario/stock-monitor/internal/domain/entity"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
)

// ErrCatalogReadOnly el documento JSON no mantiene colecciones de proveedores
// ni bodegas; sus referencias son nombres sueltos dentro de cada ítem.
var ErrCatalogReadOnly = errors.New("el documento JSON no mantiene catálogos de proveedores/bodegas")

// nameSupplierRepo resuelve referencias de proveedor del documento JSON.
// En este backend la referencia débil ya es el nombre, así que GetByID
// devuelve una entidad sintética con Name = id.
type nameSupplierRepo struct{}

// SupplierNames devuelve el resolutor de proveedores del backend de archivo.
func (s *Store) SupplierNames() repository.SupplierRepository { return nameSupplierRepo{} }

func (nameSupplierRepo) Create(*entity.Supplier) error { return ErrCatalogReadOnly }

func (nameSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	if id == "" {
		return nil, nil
	}
	return &entity.Supplier{ID: id, Name: id}, nil
}

func (nameSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }

// nameWarehouseRepo ídem para bodegas.
type nameWarehouseRepo struct{}

// WarehouseNames devuelve el resolutor de bodegas del backend de archivo.
func (s *Store) WarehouseNames() repository.WarehouseRepository { return nameWarehouseRepo{} }

func (nameWarehouseRepo) Create(*entity.Warehouse) error { return ErrCatalogReadOnly }

func (nameWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if id == "" {
		return nil, nil
	}
	return &entity.Warehouse{ID: id, Name: id}, nil
}

func (nameWarehouseRepo) List(int, int) ([]*entity.Warehouse, error) { return nil, nil }
