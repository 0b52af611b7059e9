package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle multi-step atomic operations
// (contract renewal, snapshot restore) without depending on a specific driver.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error the transaction is rolled back, otherwise committed.
	// All repository operations inside the function share one transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	OwnerRepo() OwnerRepository
	TenantRepo() TenantRepository
	PropertyRepo() PropertyRepository
	ContractRepo() ContractRepository
	TemplateRepo() TemplateRepository
	PaymentRepo() PaymentRepository
	AdminUserRepo() AdminUserRepository
}
