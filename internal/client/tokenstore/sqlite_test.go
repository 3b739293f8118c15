package tokenstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradient-edu/gradient-cli/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:tokenstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE settings (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = db.Exec(`DROP TABLE settings`) })
	return db
}

func TestSQLite_GetEmpty(t *testing.T) {
	s := NewSQLite(setupDB(t))

	tok, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", tok)
}

func TestSQLite_SetThenGet(t *testing.T) {
	ctx := context.Background()
	s := NewSQLite(setupDB(t))

	require.NoError(t, s.Set(ctx, "tok-1"))
	tok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	// overwrite must be immediately visible
	require.NoError(t, s.Set(ctx, "tok-2"))
	tok, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
}

func TestSQLite_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewSQLite(setupDB(t))

	require.NoError(t, s.Set(ctx, "tok"))
	require.NoError(t, s.Clear(ctx))

	tok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", tok)

	// clearing an already-empty store is not an error
	require.NoError(t, s.Clear(ctx))
}

func TestSQLite_ClosedDatabaseReportsLocalDataUnavailable(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewSQLite(db)
	require.NoError(t, db.Close())

	_, err := s.Get(ctx)
	assert.ErrorIs(t, err, common.ErrLocalDataNotAvailable)

	assert.Error(t, s.Set(ctx, "tok"))
	assert.ErrorIs(t, s.Clear(ctx), common.ErrLocalDataNotAvailable)
}

func TestSQLite_SetIsTransactional(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewSQLite(db)

	// the write and the read-back verification run in one transaction
	require.NoError(t, s.Set(ctx, "tok-1"))
	tok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
}

func TestOpenDatabase_MigratesSchema(t *testing.T) {
	ctx := context.Background()

	db, err := OpenDatabase(ctx, t.TempDir()+"/client.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLite(db)
	require.NoError(t, s.Set(ctx, "persisted"))

	tok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", tok)
}

func TestMemory_Lifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	tok, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", tok)

	require.NoError(t, m.Set(ctx, "abc"))
	tok, _ = m.Get(ctx)
	assert.Equal(t, "abc", tok)

	require.NoError(t, m.Clear(ctx))
	require.NoError(t, m.Clear(ctx))
	tok, _ = m.Get(ctx)
	assert.Equal(t, "", tok)
}
