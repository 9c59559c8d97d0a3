//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/piyussh25/misinformation-checker/internal/model"
	repo "github.com/piyussh25/misinformation-checker/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "checker_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/checker_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func makeUser(username, email string) model.User {
	return model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	u := makeUser("alice", "alice@example.com")
	saved, err := ur.Create(ctx, u)
	require.NoError(t, err)
	require.Equal(t, u.ID, saved.ID)

	byUsername, err := ur.GetByUsernameOrEmail(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, byUsername.ID)

	byEmail, err := ur.GetByUsernameOrEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	byPair, err := ur.GetByUsernameAndEmail(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byPair.ID)

	_, err = ur.GetByUsernameAndEmail(ctx, "alice", "wrong@example.com")
	require.ErrorIs(t, err, model.ErrNotFound)

	byID, err := ur.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, byID.Email)
}

func TestUserRepository_ConflictOnDuplicate(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	_, err = ur.Create(ctx, makeUser("bob", "bob@example.com"))
	require.NoError(t, err)

	_, err = ur.Create(ctx, makeUser("bob", "other@example.com"))
	require.ErrorIs(t, err, model.ErrConflict)

	_, err = ur.Create(ctx, makeUser("other", "bob@example.com"))
	require.ErrorIs(t, err, model.ErrConflict)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	u := makeUser("carol", "carol@example.com")
	_, err = ur.Create(ctx, u)
	require.NoError(t, err)

	require.NoError(t, ur.UpdatePassword(ctx, u.ID, "$2a$10$newhash"))

	got, err := ur.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "$2a$10$newhash", got.PasswordHash)

	err = ur.UpdatePassword(ctx, uuid.New(), "$2a$10$x")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestHistoryRepository_OrderingLimitAndClear(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	hr := repo.NewHistoryRepository(conn)

	owner := makeUser("dave", "dave@example.com")
	_, err = ur.Create(ctx, owner)
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		_, err := hr.Create(ctx, model.SearchEntry{
			ID:        uuid.New(),
			UserID:    owner.ID,
			QueryText: fmt.Sprintf("claim %d", i),
			Analysis:  "analysis",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	entries, err := hr.ListRecent(ctx, owner.ID, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "claim 4", entries[0].QueryText)
	for i := 1; i < len(entries); i++ {
		require.True(t, entries[i].CreatedAt.Before(entries[i-1].CreatedAt))
	}

	deleted, err := hr.DeleteAllByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.EqualValues(t, 5, deleted)

	entries, err = hr.ListRecent(ctx, owner.ID, model.HistoryPageSize)
	require.NoError(t, err)
	require.Empty(t, entries)
}
