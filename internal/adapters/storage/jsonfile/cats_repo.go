// Package jsonfile guarda la colección de gatos en un único archivo JSON.
// Cada mutación reescribe el archivo completo.
package jsonfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"cat-registry/internal/domain/cats"
)

const (
	DefaultPath = "cats.json"
	indent      = "    "
)

var _ cats.Repository = (*Store)(nil)

// Store es dueño de la colección en memoria y la sincroniza con el archivo.
type Store struct {
	mu   sync.RWMutex
	path string
	cats []cats.Cat

	// último contenido escrito o leído; Reload lo usa para ignorar
	// los eventos que provoca el propio store
	last []byte
}

// Open carga path (creándolo vacío si no existe) y devuelve el store listo.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	s := &Store{path: path}
	raw, loaded, err := s.read()
	if err != nil {
		return nil, err
	}
	s.cats = loaded
	s.last = raw
	return s, nil
}

func (s *Store) Path() string { return s.path }

// Load lee el archivo. Si no existe lo crea con una colección vacía.
// No reemplaza la colección en memoria; para eso está Reload.
func (s *Store) Load() ([]cats.Cat, error) {
	_, out, err := s.read()
	return out, err
}

func (s *Store) read() ([]byte, []cats.Cat, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		b, err := s.write(nil)
		if err != nil {
			return nil, nil, err
		}
		return b, []cats.Cat{}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("jsonfile: read %s: %w", s.path, err)
	}
	out, err := s.decode(raw)
	if err != nil {
		return nil, nil, err
	}
	return raw, out, nil
}

func (s *Store) decode(raw []byte) ([]cats.Cat, error) {
	out := make([]cats.Cat, 0)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("jsonfile: decode %s: %w", s.path, err)
	}
	return out, nil
}

// Save sobrescribe el archivo con la colección completa, indentada a 4 espacios.
func (s *Store) Save(records []cats.Cat) error {
	_, err := s.write(records)
	return err
}

func (s *Store) write(records []cats.Cat) ([]byte, error) {
	if records == nil {
		records = []cats.Cat{}
	}
	b, err := json.MarshalIndent(records, "", indent)
	if err != nil {
		return nil, fmt.Errorf("jsonfile: encode: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return nil, fmt.Errorf("jsonfile: write %s: %w", s.path, err)
	}
	return b, nil
}

// Reload vuelve a leer el archivo y reemplaza la colección en memoria.
// Lee y reemplaza con s.mu tomado. Si el contenido es el último que escribió
// el store no hace nada; si el archivo no existe se conserva la colección.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("jsonfile: read %s: %w", s.path, err)
	}
	if bytes.Equal(raw, s.last) {
		return nil
	}
	loaded, err := s.decode(raw)
	if err != nil {
		return err
	}
	s.cats = loaded
	s.last = raw
	return nil
}

func (s *Store) List(ctx context.Context) ([]cats.Cat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]cats.Cat, len(s.cats))
	copy(out, s.cats)
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.cats[i], nil
	}
	return cats.Cat{}, cats.ErrNotFound
}

func (s *Store) Create(ctx context.Context, c cats.Cat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("cat id required")
	}
	return s.commit(append(s.snapshot(), c))
}

func (s *Store) Update(ctx context.Context, c cats.Cat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(c.ID)
	if i < 0 {
		return cats.ErrNotFound
	}
	next := s.snapshot()
	next[i] = c
	return s.commit(next)
}

func (s *Store) Delete(ctx context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]cats.Cat, 0, len(s.cats))
	for _, c := range s.cats {
		if c.ID != id {
			next = append(next, c)
		}
	}
	removed := len(s.cats) - len(next)
	if removed == 0 {
		return 0, nil
	}
	if err := s.commit(next); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *Store) ChangeID(ctx context.Context, oldID, newID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(oldID)
	if i < 0 {
		return cats.ErrNotFound
	}
	next := s.snapshot()
	next[i].ID = newID
	return s.commit(next)
}

// commit escribe next y recién ahí lo adopta; si la escritura falla
// la colección en memoria queda como estaba. Requiere s.mu tomado.
func (s *Store) commit(next []cats.Cat) error {
	b, err := s.write(next)
	if err != nil {
		return err
	}
	s.cats = next
	s.last = b
	return nil
}

func (s *Store) snapshot() []cats.Cat {
	out := make([]cats.Cat, len(s.cats), len(s.cats)+1)
	copy(out, s.cats)
	return out
}

func (s *Store) indexOf(id string) int {
	for i, c := range s.cats {
		if c.ID == id {
			return i
		}
	}
	return -1
}
