package auth

import (
	"context" // Context for the startup load

	"user_service/internal/domain"     // Importing domain models
	"user_service/internal/repository" // User repository

	"github.com/sirupsen/logrus" // Logging library
)

// CredentialStore is an in-memory snapshot of the users table keyed by
// username. It is built once before the server accepts traffic and is
// read-only afterwards, so concurrent lookups need no locking. Users
// inserted after startup are not visible to authentication until restart.
type CredentialStore struct {
	users map[string]domain.User // Snapshot index: username -> user
}

// BuildSnapshot loads every user through the repository and indexes the
// result by username. Last write wins if usernames ever collide.
func BuildSnapshot(ctx context.Context, repo *repository.UserRepository) (*CredentialStore, error) {
	users, err := repo.ListAll(ctx) // Single select-all at startup
	if err != nil {
		return nil, err
	}
	index := make(map[string]domain.User, len(users))
	// Index the rows by login name
	for _, u := range users {
		index[u.Username] = u
	}
	logrus.WithField("users", len(index)).Info("Credential snapshot built")
	return &CredentialStore{users: index}, nil
}

// Lookup returns the snapshot entry for the given username
func (s *CredentialStore) Lookup(username string) (domain.User, bool) {
	u, ok := s.users[username]
	return u, ok
}
