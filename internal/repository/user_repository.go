package repository

import (
	"context" // Context for per-call timeouts
	"time"    // Timeout durations

	"user_service/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Named statements executed by the repository. Handlers never build SQL;
// every value travels through a bound parameter.
const (
	stmtSelectAllUsers  = `SELECT id, username, password, role FROM users`                                // select-all-users
	stmtSelectUsersByID = `SELECT id, username, password, role FROM users WHERE id = ? AND username = ?`  // select-users-by-id
	stmtLoginUsers      = `SELECT id, username, password, role FROM users WHERE username = ? AND password = ?` // login-users
	stmtInsertUsers     = `INSERT INTO users (username, password, role) VALUES (?, ?, ?)`                 // insert-users
	stmtUpdateUsersByID = `UPDATE users SET username = ?, password = ?, role = ? WHERE id = ?`            // update-users-by-id
	stmtDeleteUsersByID = `DELETE FROM users WHERE id = ?`                                                // delete-users-by-id
)

// storeTimeout bounds every individual store call
const storeTimeout = 3 * time.Second

// UserRepository is the single point of SQL execution for the users table
type UserRepository struct {
	db *gorm.DB // Shared GORM handle
}

// NewUserRepository is the UserRepository constructor
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ListAll returns every user row, fully materialized
func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	users := []domain.User{} // Empty slice so the handler renders [] rather than null
	if err := r.db.WithContext(ctx).Raw(stmtSelectAllUsers).Scan(&users).Error; err != nil {
		return nil, err // Store failure propagates unchanged
	}
	return users, nil
}

// FindByID returns the user matching both id and username, or nil when absent.
// Absence is not an error; the handler renders it as 404.
func (r *UserRepository) FindByID(ctx context.Context, id uint, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var user domain.User // Target for the row scan
	result := r.db.WithContext(ctx).Raw(stmtSelectUsersByID, id, username).Scan(&user)
	if result.Error != nil {
		return nil, result.Error // Store failure propagates unchanged
	}
	// No matching row scanned means not found
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

// Login returns the user whose username and password both match exactly,
// or nil when the credentials are wrong. The caller must not learn which
// of the two fields failed.
func (r *UserRepository) Login(ctx context.Context, username, password string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	var user domain.User // Target for the row scan
	result := r.db.WithContext(ctx).Raw(stmtLoginUsers, username, password).Scan(&user)
	if result.Error != nil {
		return nil, result.Error // Store failure propagates unchanged
	}
	// No row means invalid credentials, never an error
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &user, nil
}

// Insert adds a new row and returns the number of rows affected.
// The id on the passed-in user is ignored; the store generates the key.
func (r *UserRepository) Insert(ctx context.Context, user domain.User) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	result := r.db.WithContext(ctx).Exec(stmtInsertUsers, user.Username, user.Password, user.Role)
	return result.RowsAffected, result.Error
}

// Update rewrites username, password and role for the row matching user.ID
// and returns the number of rows affected
func (r *UserRepository) Update(ctx context.Context, user domain.User) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	result := r.db.WithContext(ctx).Exec(stmtUpdateUsersByID, user.Username, user.Password, user.Role, user.ID)
	return result.RowsAffected, result.Error
}

// DeleteByID removes the row matching id and returns the number of rows
// affected. Zero rows affected means nothing to delete, not an error.
func (r *UserRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	result := r.db.WithContext(ctx).Exec(stmtDeleteUsersByID, id)
	return result.RowsAffected, result.Error
}
