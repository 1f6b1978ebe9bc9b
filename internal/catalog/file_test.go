package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	menu := `[
		{"id": 1, "name": "Coffee", "price": 300, "inventory": 10, "categoryId": 1},
		{"id": 2, "name": "Cake", "price": 500, "inventory": 5, "categoryId": 2},
		{"id": 3, "name": "Americano", "price": 350, "inventory": 8, "categoryId": 1}
	]`
	categories := `[
		{"id": 1, "description": "Hot Drinks"},
		{"id": 2, "description": "Pastries"}
	]`

	require.NoError(t, os.WriteFile(filepath.Join(dir, "menu.json"), []byte(menu), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "categories.json"), []byte(categories), 0o644))
	return dir
}

func TestFileCatalogLoads(t *testing.T) {
	c, err := NewFileCatalog(writeDataDir(t))
	require.NoError(t, err)

	categories, err := c.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	items, err := c.ItemsByCategory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// ItemsByCategory orders by name.
	assert.Equal(t, "Americano", items[0].Name)
	assert.Equal(t, "Coffee", items[1].Name)
}

func TestFileCatalogMissingDataDirIsFatal(t *testing.T) {
	_, err := NewFileCatalog(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFileCatalogItemByID(t *testing.T) {
	c, err := NewFileCatalog(writeDataDir(t))
	require.NoError(t, err)

	item, err := c.ItemByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Cake", item.Name)
	assert.Equal(t, 500, item.Price)

	_, err = c.ItemByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestFileCatalogDecrementInventory(t *testing.T) {
	c, err := NewFileCatalog(writeDataDir(t))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, c.DecrementInventory(ctx, 2, 3))
	item, err := c.ItemByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Inventory)

	// Taking the count below zero is rejected and leaves stock untouched.
	err = c.DecrementInventory(ctx, 2, 3)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	item, err = c.ItemByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Inventory)

	assert.ErrorIs(t, c.DecrementInventory(ctx, 99, 1), ErrItemNotFound)
}
