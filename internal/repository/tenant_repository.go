package repository

import "github.com/nurpe/rentals/internal/model"

type TenantRepository struct {
	store *store[*model.Tenant]
}

func NewTenantRepository() *TenantRepository {
	return &TenantRepository{store: newStore[*model.Tenant]()}
}

func (r *TenantRepository) NextID() int {
	return r.store.nextID()
}

func (r *TenantRepository) Save(t *model.Tenant) {
	r.store.put(t.ID(), t)
}

func (r *TenantRepository) Get(id int) (*model.Tenant, error) {
	return r.store.get(id)
}

func (r *TenantRepository) List() []*model.Tenant {
	return r.store.list()
}
