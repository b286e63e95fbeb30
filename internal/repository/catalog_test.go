package repository

import (
	"testing"

	"grocery-store/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogInsertAndFind(t *testing.T) {
	catalog := NewCatalog()
	p := domain.NewProduct("milk", 2.50, 10)

	require.NoError(t, catalog.Insert(p))

	found, err := catalog.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "milk", found.Name)

	found, err = catalog.FindByName("milk")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
}

func TestCatalogDuplicateIDRejected(t *testing.T) {
	catalog := NewCatalog()
	p := domain.NewProduct("milk", 2.50, 10)

	require.NoError(t, catalog.Insert(p))
	assert.ErrorIs(t, catalog.Insert(p), ErrDuplicateProduct)
	assert.Equal(t, 1, catalog.Len())
}

func TestCatalogFindMissing(t *testing.T) {
	catalog := NewCatalog()

	_, err := catalog.FindByID(uuid.New())
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = catalog.FindByName("nothing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogIterationOrder(t *testing.T) {
	catalog := NewCatalog()
	names := []string{"milk", "eggs", "bread"}
	for _, name := range names {
		require.NoError(t, catalog.Insert(domain.NewProduct(name, 1, 5)))
	}

	var got []string
	for p := range catalog.All() {
		got = append(got, p.Name)
	}
	assert.Equal(t, names, got)

	// The sequence is restartable
	count := 0
	for range catalog.All() {
		count++
	}
	assert.Equal(t, len(names), count)
}

func TestCatalogReplace(t *testing.T) {
	catalog := NewCatalog()
	require.NoError(t, catalog.Insert(domain.NewProduct("old", 1, 5)))

	replacement := []domain.Product{
		*domain.NewProduct("new-a", 2, 3),
		*domain.NewProduct("new-b", 4, 6),
	}
	catalog.Replace(replacement)

	assert.Equal(t, 2, catalog.Len())
	_, err := catalog.FindByName("old")
	assert.ErrorIs(t, err, ErrProductNotFound)

	found, err := catalog.FindByID(replacement[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "new-b", found.Name)
}
