package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/zeitrechner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteKVRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteKVRepo(testutil.NewTestDB(t), "proc-a")

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteKVRepo_SetGet(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteKVRepo(testutil.NewTestDB(t), "proc-a")

	require.NoError(t, repo.Set(ctx, "k", "one"))
	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "one", got)

	require.NoError(t, repo.Set(ctx, "k", "two"))
	got, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", got)
}

func TestSQLiteKVRepo_RevisionTracksWriter(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	procA := NewSQLiteKVRepo(database, "proc-a")
	procB := NewSQLiteKVRepo(database, "proc-b")

	rev, err := procA.Revision(ctx, "k")
	require.NoError(t, err)
	assert.Zero(t, rev.Number)
	assert.Empty(t, rev.Origin)

	require.NoError(t, procA.Set(ctx, "k", "1"))
	rev, err = procB.Revision(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev.Number)
	assert.Equal(t, "proc-a", rev.Origin)

	require.NoError(t, procB.Set(ctx, "k", "2"))
	rev, err = procA.Revision(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rev.Number)
	assert.Equal(t, "proc-b", rev.Origin)
}
