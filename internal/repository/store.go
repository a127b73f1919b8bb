package repository

import "errors"

var ErrRecordNotFound = errors.New("record not found")

// store keeps records in insertion order and hands out increasing ids.
// Ids are never reused after a delete.
type store[T any] struct {
	lastID int
	ids    []int
	items  map[int]T
}

func newStore[T any]() *store[T] {
	return &store[T]{items: make(map[int]T)}
}

// nextID is the id the next put should use. It only advances once a record is stored.
func (s *store[T]) nextID() int {
	return s.lastID + 1
}

func (s *store[T]) put(id int, item T) {
	if _, exists := s.items[id]; !exists {
		s.ids = append(s.ids, id)
	}
	if id > s.lastID {
		s.lastID = id
	}
	s.items[id] = item
}

func (s *store[T]) get(id int) (T, error) {
	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, ErrRecordNotFound
	}
	return item, nil
}

func (s *store[T]) remove(id int) error {
	if _, ok := s.items[id]; !ok {
		return ErrRecordNotFound
	}
	delete(s.items, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (s *store[T]) list() []T {
	result := make([]T, 0, len(s.ids))
	for _, id := range s.ids {
		result = append(result, s.items[id])
	}
	return result
}
