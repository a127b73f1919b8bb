package repository

import (
	"strings"

	"github.com/nurpe/rentals/internal/model"
)

type PropertyRepository struct {
	store *store[model.Property]
}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{store: newStore[model.Property]()}
}

func (r *PropertyRepository) NextID() int {
	return r.store.nextID()
}

func (r *PropertyRepository) Save(p model.Property) {
	r.store.put(p.ID(), p)
}

func (r *PropertyRepository) Get(id int) (model.Property, error) {
	return r.store.get(id)
}

func (r *PropertyRepository) Delete(id int) error {
	return r.store.remove(id)
}

func (r *PropertyRepository) List() []model.Property {
	return r.store.list()
}

// SearchByAddress matches a case-insensitive substring of the address.
func (r *PropertyRepository) SearchByAddress(query string) []model.Property {
	query = strings.ToLower(strings.TrimSpace(query))
	var result []model.Property
	for _, p := range r.store.list() {
		if strings.Contains(strings.ToLower(p.Address()), query) {
			result = append(result, p)
		}
	}
	return result
}
