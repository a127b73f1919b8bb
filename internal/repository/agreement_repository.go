package repository

import "github.com/nurpe/rentals/internal/model"

type AgreementRepository struct {
	store *store[*model.Agreement]
}

func NewAgreementRepository() *AgreementRepository {
	return &AgreementRepository{store: newStore[*model.Agreement]()}
}

func (r *AgreementRepository) NextID() int {
	return r.store.nextID()
}

func (r *AgreementRepository) Save(a *model.Agreement) {
	r.store.put(a.ID(), a)
}

func (r *AgreementRepository) Get(id int) (*model.Agreement, error) {
	return r.store.get(id)
}

func (r *AgreementRepository) List() []*model.Agreement {
	return r.store.list()
}

// ListByProperty returns the agreements that reference the property.
func (r *AgreementRepository) ListByProperty(propertyID int) []*model.Agreement {
	var result []*model.Agreement
	for _, a := range r.store.list() {
		if a.Property().ID() == propertyID {
			result = append(result, a)
		}
	}
	return result
}
