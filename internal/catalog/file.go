// internal/catalog/file.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// fileCatalog implements Catalog and Categories from local JSON files. It is
// the demo/dev data source; inventory changes live only in memory.
type fileCatalog struct {
	mu         sync.RWMutex
	items      map[int]*Item
	categories []Category
}

// NewFileCatalog loads menu.json and categories.json from dataDir. A missing
// or unparseable file is a configuration error; the kiosk cannot run in file
// mode without its data files.
func NewFileCatalog(dataDir string) (*fileCatalog, error) {
	var items []Item
	if err := readJSON(filepath.Join(dataDir, "menu.json"), &items); err != nil {
		return nil, fmt.Errorf("failed to load menu data: %w", err)
	}

	var categories []Category
	if err := readJSON(filepath.Join(dataDir, "categories.json"), &categories); err != nil {
		return nil, fmt.Errorf("failed to load category data: %w", err)
	}

	byID := make(map[int]*Item, len(items))
	for i := range items {
		item := items[i]
		byID[item.ID] = &item
	}

	log.Printf("Loaded %d menu items and %d categories from %s", len(items), len(categories), dataDir)
	return &fileCatalog{items: byID, categories: categories}, nil
}

func (c *fileCatalog) ItemsByCategory(_ context.Context, categoryID int) ([]Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var items []Item
	for _, item := range c.items {
		if item.CategoryID == categoryID {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (c *fileCatalog) ItemByID(_ context.Context, id int) (*Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	found := *item
	return &found, nil
}

func (c *fileCatalog) DecrementInventory(_ context.Context, itemID, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[itemID]
	if !ok {
		return ErrItemNotFound
	}
	if item.Inventory < quantity {
		return ErrInsufficientStock
	}
	item.Inventory -= quantity
	return nil
}

func (c *fileCatalog) All(_ context.Context) ([]Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Category(nil), c.categories...), nil
}

// readJSON decodes a JSON file into v.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
