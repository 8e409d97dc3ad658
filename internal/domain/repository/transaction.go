package repository

import "context"

// RepositoryFactory creates repository instances bound to a single transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	RefreshTokenRepo() RefreshTokenRepository
	PlayerRepo() PlayerRepository
	ClassRepo() ClassRepository
	EnrollmentRepo() EnrollmentRepository
}

// TransactionManager runs a function within one database transaction. The
// callback receives a factory whose repositories all share that transaction;
// returning an error rolls everything back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
