package infra

import (
	"path/filepath"
	"testing"

	"github.com/amirasaad/networth/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBConnection_MissingURL(t *testing.T) {
	_, err := NewDBConnection(&config.DB{}, "test")
	assert.Error(t, err)

	_, err = NewDBConnection(nil, "test")
	assert.Error(t, err)
}

func TestNewDBConnection_SQLiteMigratesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "networth.db")
	db, err := NewDBConnection(&config.DB{Url: "sqlite://" + path}, "test")
	require.NoError(t, err)

	for _, table := range []string{
		"users", "assets", "liabilities", "snapshots",
		"families", "family_members", "family_invitations",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestDialector(t *testing.T) {
	tests := []struct {
		url    string
		sqlite bool
	}{
		{"sqlite://data/app.db", true},
		{"file:test?mode=memory", true},
		{"postgres://u:p@localhost:5432/networth", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			d, isSQLite := dialector(tt.url)
			assert.NotNil(t, d)
			assert.Equal(t, tt.sqlite, isSQLite)
		})
	}
}
