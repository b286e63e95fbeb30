package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"grocery-store/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSnapshot() *Snapshot {
	product := domain.NewProduct("milk", 2.50, 10)
	product.Stock = 42

	member := domain.NewMember("Alice", "1 Main St", "555-0101", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 25)
	member.RecordTransaction(domain.Transaction{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    3,
		Timestamp:   time.Date(2024, 6, 2, 14, 30, 0, 0, time.UTC),
	})

	order := domain.NewOrder(product.ID, product.Name, 20)

	return &Snapshot{
		SavedAt:  time.Now().UTC(),
		Products: []domain.Product{*product},
		Members:  []domain.Member{*member},
		Orders:   []domain.Order{*order},
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	store := NewStore(path, zap.NewNop())

	snap := testSnapshot()
	require.NoError(t, store.Save(snap))

	loaded, err := store.Load()
	require.NoError(t, err)

	require.Len(t, loaded.Products, 1)
	assert.Equal(t, snap.Products[0].ID, loaded.Products[0].ID)
	assert.Equal(t, 42, loaded.Products[0].Stock)
	assert.Equal(t, 10, loaded.Products[0].ReorderLevel)

	require.Len(t, loaded.Members, 1)
	assert.Equal(t, "Alice", loaded.Members[0].Name)
	require.Len(t, loaded.Members[0].Transactions, 1)
	assert.Equal(t, 3, loaded.Members[0].Transactions[0].Quantity)
	assert.True(t, loaded.Members[0].Transactions[0].Timestamp.Equal(snap.Members[0].Transactions[0].Timestamp))

	require.Len(t, loaded.Orders, 1)
	assert.Equal(t, snap.Orders[0].ProductID, loaded.Orders[0].ProductID)
	assert.Equal(t, 20, loaded.Orders[0].Quantity)
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"), zap.NewNop())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path, zap.NewNop()).Load()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSnapshot)
}

func TestSaveOverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	store := NewStore(path, zap.NewNop())

	require.NoError(t, store.Save(testSnapshot()))

	second := testSnapshot()
	second.Products[0].Stock = 7
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Products[0].Stock)

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSnapshotOrderIDsStayUnique(t *testing.T) {
	// Two orders for different products survive a round trip keyed correctly
	path := filepath.Join(t.TempDir(), "store.json")
	store := NewStore(path, zap.NewNop())

	snap := testSnapshot()
	snap.Orders = append(snap.Orders, *domain.NewOrder(uuid.New(), "eggs", 10))
	require.NoError(t, store.Save(snap))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Orders, 2)
	assert.NotEqual(t, loaded.Orders[0].ProductID, loaded.Orders[1].ProductID)
}
