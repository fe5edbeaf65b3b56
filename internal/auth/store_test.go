package auth

import (
	"context"
	"testing"

	"user_service/internal/domain"
	"user_service/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestRepo(t *testing.T, name string) *repository.UserRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return repository.NewUserRepository(db)
}

func TestBuildSnapshotAndLookup(t *testing.T) {
	repo := openTestRepo(t, "auth_snapshot")
	ctx := context.Background()

	_, err := repo.Insert(ctx, domain.User{Username: "admin", Password: "pw-admin", Role: "admin"})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, domain.User{Username: "carol", Password: "pw-carol", Role: "customer"})
	require.NoError(t, err)

	store, err := BuildSnapshot(ctx, repo)
	require.NoError(t, err)

	u, ok := store.Lookup("admin")
	require.True(t, ok)
	require.Equal(t, "pw-admin", u.Password)
	require.Equal(t, "admin", u.Role)

	_, ok = store.Lookup("nobody")
	require.False(t, ok)
}

func TestSnapshotIsStaleAfterBuild(t *testing.T) {
	repo := openTestRepo(t, "auth_stale")
	ctx := context.Background()

	store, err := BuildSnapshot(ctx, repo)
	require.NoError(t, err)

	// Rows inserted after the build are invisible until a rebuild
	_, err = repo.Insert(ctx, domain.User{Username: "late", Password: "pw", Role: "customer"})
	require.NoError(t, err)

	_, ok := store.Lookup("late")
	require.False(t, ok)
}
