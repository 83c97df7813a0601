package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/domain"
	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/database"
	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/migrations"
)

func TestLoadInventory(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, migrations.Run(db))

	csvPath := filepath.Join(t.TempDir(), "inventory.csv")
	csv := "name,quantity\nParacetamol,120\nIbuprofen,80\n,5\nBadRow,notanumber\nNegative,-2\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o644))

	LoadInventory(db, csvPath, zerolog.Nop())

	var medicines []domain.MedicineStock
	require.NoError(t, db.Select(&medicines, `SELECT id, name, quantity FROM medicineinventory ORDER BY rowid`))
	require.Len(t, medicines, 2)
	assert.Equal(t, "Paracetamol", medicines[0].Name)
	assert.Equal(t, 120, medicines[0].Quantity)
	assert.Equal(t, "Ibuprofen", medicines[1].Name)

	// Re-running must not duplicate names.
	LoadInventory(db, csvPath, zerolog.Nop())
	require.NoError(t, db.Select(&medicines, `SELECT id, name, quantity FROM medicineinventory ORDER BY rowid`))
	assert.Len(t, medicines, 2)
}

func TestLoadInventoryMissingFileIsNoOp(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, migrations.Run(db))

	LoadInventory(db, "does-not-exist.csv", zerolog.Nop())

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM medicineinventory`))
	assert.Zero(t, count)
}
