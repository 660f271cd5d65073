// Package jsonstore implementa los puertos de persistencia sobre un único
// documento JSON en disco, compatible con los datos existentes del monitor:
//
//	{"inventory_items": [...], "stock_movements": [...]}
//
// Cada transacción lógica lee el documento completo, opera en memoria y lo
// reescribe de forma atómica (archivo temporal + rename). Un RWMutex de store
// serializa las escrituras; no hay estado global compartido fuera del Store.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tu-usuario/stock-monitor/internal/application/ledger"
	"github.com/tu-usuario/stock-monitor/internal/domain"
	"github.com/tu-usuario/stock-monitor/internal/domain/repository"
)

var _ ledger.TxRunner = (*Store)(nil)

// Store es el colaborador de almacenamiento respaldado por archivo JSON.
type Store struct {
	path string
	mu   sync.RWMutex
}

// Open construye el store sobre la ruta dada. El archivo se crea en el primer
// commit si no existe.
func Open(path string) *Store {
	return &Store{path: path}
}

// Run ejecuta fn como una transacción: carga el documento, opera en memoria y
// solo si fn retorna nil reescribe el archivo de forma atómica. Ante cualquier
// error el documento en disco queda intacto (sin aplicación parcial).
func (s *Store) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(&docItemRepo{doc: doc}, &docMovementRepo{doc: doc}); err != nil {
		return err
	}
	return s.save(doc)
}

// ItemRepo devuelve un ItemRepository de solo lectura consistente: cada
// operación carga un snapshot completo del documento.
func (s *Store) ItemRepo() repository.ItemRepository { return &storeItemRepo{s: s} }

// MovementRepo devuelve un MovementRepository de solo lectura consistente.
func (s *Store) MovementRepo() repository.MovementRepository { return &storeMovementRepo{s: s} }

// load lee y decodifica el documento completo. Archivo inexistente = documento
// vacío (el primer commit lo crea).
func (s *Store) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &document{}, nil
		}
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decodificar %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}
	return &doc, nil
}

// save serializa y reemplaza el archivo de forma atómica (temp + rename).
func (s *Store) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: codificar documento: %v", domain.ErrStorageUnavailable, err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".stock_monitor_db-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: crear temporal: %v", domain.ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: escribir temporal: %v", domain.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: cerrar temporal: %v", domain.ErrStorageUnavailable, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: reemplazar %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}
	return nil
}

// withSnapshot ejecuta fn sobre un snapshot de lectura del documento.
func (s *Store) withSnapshot(fn func(doc *document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}
