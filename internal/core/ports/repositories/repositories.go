package repositories

// RepositoryProvider holds instances of all repositories, allowing them to
// be passed around as a group during service construction.
type RepositoryProvider struct {
	TransactionRepo TransactionRepository
}
