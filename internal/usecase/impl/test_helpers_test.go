package impl

import (
	"context"
	"io"
	"log/slog"

	"imobi/internal/domain/entity"
	"imobi/internal/domain/repository"
	"imobi/internal/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// In-memory repository fakes. They keep insertion order so list ordering
// assertions stay deterministic.

type fakeOwnerRepo struct {
	owners []*entity.Owner
	nextID int64
}

func (r *fakeOwnerRepo) FindByID(_ context.Context, id int64) (*entity.Owner, error) {
	for _, o := range r.owners {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, repository.ErrOwnerNotFound
}

func (r *fakeOwnerRepo) FindAll(_ context.Context) ([]*entity.Owner, error) {
	return r.owners, nil
}

func (r *fakeOwnerRepo) Create(_ context.Context, owner *entity.Owner) error {
	if owner.ID == 0 {
		r.nextID++
		owner.ID = r.nextID
	}
	r.owners = append(r.owners, owner)
	return nil
}

func (r *fakeOwnerRepo) Update(_ context.Context, owner *entity.Owner) error {
	for i, o := range r.owners {
		if o.ID == owner.ID {
			r.owners[i] = owner
			return nil
		}
	}
	return repository.ErrOwnerNotFound
}

func (r *fakeOwnerRepo) Delete(_ context.Context, id int64) error {
	for i, o := range r.owners {
		if o.ID == id {
			r.owners = append(r.owners[:i], r.owners[i+1:]...)
			return nil
		}
	}
	return repository.ErrOwnerNotFound
}

type fakeTenantRepo struct {
	tenants []*entity.Tenant
	nextID  int64
}

func (r *fakeTenantRepo) FindByID(_ context.Context, id int64) (*entity.Tenant, error) {
	for _, t := range r.tenants {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repository.ErrTenantNotFound
}

func (r *fakeTenantRepo) FindAll(_ context.Context) ([]*entity.Tenant, error) {
	return r.tenants, nil
}

func (r *fakeTenantRepo) Create(_ context.Context, tenant *entity.Tenant) error {
	if tenant.ID == 0 {
		r.nextID++
		tenant.ID = r.nextID
	}
	r.tenants = append(r.tenants, tenant)
	return nil
}

func (r *fakeTenantRepo) Update(_ context.Context, tenant *entity.Tenant) error {
	for i, t := range r.tenants {
		if t.ID == tenant.ID {
			r.tenants[i] = tenant
			return nil
		}
	}
	return repository.ErrTenantNotFound
}

func (r *fakeTenantRepo) Delete(_ context.Context, id int64) error {
	for i, t := range r.tenants {
		if t.ID == id {
			r.tenants = append(r.tenants[:i], r.tenants[i+1:]...)
			return nil
		}
	}
	return repository.ErrTenantNotFound
}

type fakePropertyRepo struct {
	properties []*entity.Property
	nextID     int64
}

func (r *fakePropertyRepo) FindByID(_ context.Context, id int64) (*entity.Property, error) {
	for _, p := range r.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrPropertyNotFound
}

func (r *fakePropertyRepo) FindAll(_ context.Context) ([]*entity.Property, error) {
	return r.properties, nil
}

func (r *fakePropertyRepo) FindByOwner(_ context.Context, ownerID int64) ([]*entity.Property, error) {
	var out []*entity.Property
	for _, p := range r.properties {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) Create(_ context.Context, property *entity.Property) error {
	if property.ID == 0 {
		r.nextID++
		property.ID = r.nextID
	}
	r.properties = append(r.properties, property)
	return nil
}

func (r *fakePropertyRepo) Update(_ context.Context, property *entity.Property) error {
	for i, p := range r.properties {
		if p.ID == property.ID {
			r.properties[i] = property
			return nil
		}
	}
	return repository.ErrPropertyNotFound
}

func (r *fakePropertyRepo) Delete(_ context.Context, id int64) error {
	for i, p := range r.properties {
		if p.ID == id {
			r.properties = append(r.properties[:i], r.properties[i+1:]...)
			return nil
		}
	}
	return repository.ErrPropertyNotFound
}

type fakeContractRepo struct {
	contracts []*entity.Contract
	nextID    int64
}

func (r *fakeContractRepo) FindByID(_ context.Context, id int64) (*entity.Contract, error) {
	for _, c := range r.contracts {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrContractNotFound
}

func (r *fakeContractRepo) FindAll(_ context.Context) ([]*entity.Contract, error) {
	return r.contracts, nil
}

func (r *fakeContractRepo) FindByStatus(_ context.Context, status string) ([]*entity.Contract, error) {
	var out []*entity.Contract
	for _, c := range r.contracts {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) Create(_ context.Context, contract *entity.Contract) error {
	if contract.ID == 0 {
		r.nextID++
		contract.ID = r.nextID
	}
	r.contracts = append(r.contracts, contract)
	return nil
}

func (r *fakeContractRepo) Update(_ context.Context, contract *entity.Contract) error {
	for i, c := range r.contracts {
		if c.ID == contract.ID {
			r.contracts[i] = contract
			return nil
		}
	}
	return repository.ErrContractNotFound
}

func (r *fakeContractRepo) Delete(_ context.Context, id int64) error {
	for i, c := range r.contracts {
		if c.ID == id {
			r.contracts = append(r.contracts[:i], r.contracts[i+1:]...)
			return nil
		}
	}
	return repository.ErrContractNotFound
}

type fakeTemplateRepo struct {
	templates []*entity.ContractTemplate
	nextID    int64
}

func (r *fakeTemplateRepo) FindByID(_ context.Context, id int64) (*entity.ContractTemplate, error) {
	for _, t := range r.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repository.ErrTemplateNotFound
}

func (r *fakeTemplateRepo) FindFirstActiveByType(_ context.Context, contractType string) (*entity.ContractTemplate, error) {
	for _, t := range r.templates {
		if t.IsActive && t.Type == contractType {
			return t, nil
		}
	}
	return nil, repository.ErrTemplateNotFound
}

func (r *fakeTemplateRepo) FindAllActive(_ context.Context) ([]*entity.ContractTemplate, error) {
	var out []*entity.ContractTemplate
	for _, t := range r.templates {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTemplateRepo) FindAll(_ context.Context) ([]*entity.ContractTemplate, error) {
	return r.templates, nil
}

func (r *fakeTemplateRepo) Create(_ context.Context, template *entity.ContractTemplate) error {
	if template.ID == 0 {
		r.nextID++
		template.ID = r.nextID
	}
	r.templates = append(r.templates, template)
	return nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, template *entity.ContractTemplate) error {
	for i, t := range r.templates {
		if t.ID == template.ID {
			r.templates[i] = template
			return nil
		}
	}
	return repository.ErrTemplateNotFound
}

func (r *fakeTemplateRepo) Deactivate(_ context.Context, id int64) error {
	for _, t := range r.templates {
		if t.ID == id {
			t.IsActive = false
			return nil
		}
	}
	return repository.ErrTemplateNotFound
}

type fakePaymentRepo struct {
	payments []*entity.Payment
	nextID   int64
}

func (r *fakePaymentRepo) FindByID(_ context.Context, id int64) (*entity.Payment, error) {
	for _, p := range r.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrPaymentNotFound
}

func (r *fakePaymentRepo) FindAll(_ context.Context) ([]*entity.Payment, error) {
	return r.payments, nil
}

func (r *fakePaymentRepo) FindByContract(_ context.Context, contractID int64) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.ContractID == contractID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	if payment.ID == 0 {
		r.nextID++
		payment.ID = r.nextID
	}
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakePaymentRepo) Update(_ context.Context, payment *entity.Payment) error {
	for i, p := range r.payments {
		if p.ID == payment.ID {
			r.payments[i] = payment
			return nil
		}
	}
	return repository.ErrPaymentNotFound
}

func (r *fakePaymentRepo) Delete(_ context.Context, id int64) error {
	for i, p := range r.payments {
		if p.ID == id {
			r.payments = append(r.payments[:i], r.payments[i+1:]...)
			return nil
		}
	}
	return repository.ErrPaymentNotFound
}

type fakeAdminUserRepo struct {
	users []*entity.AdminUser
}

func (r *fakeAdminUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrAdminUserNotFound
}

func (r *fakeAdminUserRepo) FindByEmail(_ context.Context, email string) (*entity.AdminUser, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrAdminUserNotFound
}

func (r *fakeAdminUserRepo) Create(_ context.Context, user *entity.AdminUser) error {
	// Store a copy, like a real repository writing its own row; callers must
	// not be able to mutate stored state through the pointer they passed in.
	stored := *user
	r.users = append(r.users, &stored)
	return nil
}

// fakeRepos doubles as TransactionManager and RepositoryFactory; "transactions"
// run the function directly against the shared fakes.
type fakeRepos struct {
	owners     *fakeOwnerRepo
	tenants    *fakeTenantRepo
	properties *fakePropertyRepo
	contracts  *fakeContractRepo
	templates  *fakeTemplateRepo
	payments   *fakePaymentRepo
	admins     *fakeAdminUserRepo
}

func newFakeRepos() *fakeRepos {
	return &fakeRepos{
		owners:     &fakeOwnerRepo{},
		tenants:    &fakeTenantRepo{},
		properties: &fakePropertyRepo{},
		contracts:  &fakeContractRepo{},
		templates:  &fakeTemplateRepo{},
		payments:   &fakePaymentRepo{},
		admins:     &fakeAdminUserRepo{},
	}
}

func (f *fakeRepos) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeRepos) OwnerRepo() repository.OwnerRepository         { return f.owners }
func (f *fakeRepos) TenantRepo() repository.TenantRepository       { return f.tenants }
func (f *fakeRepos) PropertyRepo() repository.PropertyRepository   { return f.properties }
func (f *fakeRepos) ContractRepo() repository.ContractRepository   { return f.contracts }
func (f *fakeRepos) TemplateRepo() repository.TemplateRepository   { return f.templates }
func (f *fakeRepos) PaymentRepo() repository.PaymentRepository     { return f.payments }
func (f *fakeRepos) AdminUserRepo() repository.AdminUserRepository { return f.admins }

// fakeSnapshotStore keeps snapshots in memory, newest-first like the blob store.
type fakeSnapshotStore struct {
	keys  []string
	blobs map[string][]byte
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{blobs: map[string][]byte{}}
}

func (s *fakeSnapshotStore) Write(_ context.Context, key string, data []byte) error {
	s.keys = append([]string{key}, s.keys...)
	s.blobs[key] = data
	return nil
}

func (s *fakeSnapshotStore) Read(_ context.Context, key string) ([]byte, error) {
	data, ok := s.blobs[key]
	if !ok {
		return nil, errors.New("snapshot not found")
	}
	return data, nil
}

func (s *fakeSnapshotStore) List(_ context.Context) ([]string, error) {
	return s.keys, nil
}

func floatPtr(v float64) *float64 { return &v }
