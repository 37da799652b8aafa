package fixed128

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/binarytime/internal/errcode"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// A single connection keeps the in-memory database alive between calls.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE amounts (id INTEGER PRIMARY KEY, value BLOB)`)
	require.NoError(t, err)
	return db
}

func TestSQL_RoundTrip(t *testing.T) {
	db := openTestDB(t)

	values := []Fixed128{Zero, One, MustNew(-22, 7), MustNew(1, 3), FromRaw(1<<63, 0)}
	for i, v := range values {
		_, err := db.Exec(`INSERT INTO amounts (id, value) VALUES (?, ?)`, i, v)
		require.NoError(t, err)
	}

	for i, want := range values {
		var got Fixed128
		require.NoError(t, db.QueryRow(`SELECT value FROM amounts WHERE id = ?`, i).Scan(&got))
		assert.Equal(t, want, got)
	}

	var size int
	require.NoError(t, db.QueryRow(`SELECT length(value) FROM amounts WHERE id = 2`).Scan(&size))
	assert.Equal(t, 17, size)
}

func TestSQL_ScanNull(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO amounts (id, value) VALUES (1, NULL)`)
	require.NoError(t, err)

	got := One
	require.NoError(t, db.QueryRow(`SELECT value FROM amounts WHERE id = 1`).Scan(&got))
	assert.Equal(t, Zero, got)
}

func TestScan_Text(t *testing.T) {
	var f Fixed128
	require.NoError(t, f.Scan("-00.40"))
	assert.Equal(t, MustNew(-1, 4), f)
}

func TestScan_UnsupportedType(t *testing.T) {
	var f Fixed128
	err := f.Scan(int64(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, errcode.ErrInvalidBinary)
}
