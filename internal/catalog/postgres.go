// internal/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// postgresCatalog implements Catalog and Categories against the kiosk
// database.
type postgresCatalog struct {
	db     *sql.DB
	tracer trace.Tracer
}

// NewPostgresCatalog creates a database-backed catalog.
func NewPostgresCatalog(db *sql.DB) *postgresCatalog {
	return &postgresCatalog{
		db:     db,
		tracer: otel.Tracer("brewpos/catalog"),
	}
}

// ItemsByCategory returns all available items in a category, ordered by name.
func (c *postgresCatalog) ItemsByCategory(ctx context.Context, categoryID int) ([]Item, error) {
	query := `
		SELECT id, name, price, inventory, category_id
		FROM items
		WHERE category_id = $1 AND is_available = TRUE
		ORDER BY name
	`
	rows, err := c.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for category %d: %w", categoryID, err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Inventory, &item.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ItemByID retrieves a single menu item.
func (c *postgresCatalog) ItemByID(ctx context.Context, id int) (*Item, error) {
	query := `
		SELECT id, name, price, inventory, category_id
		FROM items
		WHERE id = $1
	`
	item := &Item{}
	err := c.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Price, &item.Inventory, &item.CategoryID)
	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return item, nil
}

// DecrementInventory subtracts quantity from the item's inventory. The guard
// in the WHERE clause rejects decrements that would go below zero.
func (c *postgresCatalog) DecrementInventory(ctx context.Context, itemID, quantity int) error {
	ctx, span := c.tracer.Start(ctx, "catalog.decrement_inventory",
		trace.WithAttributes(
			attribute.Int("item.id", itemID),
			attribute.Int("quantity", quantity),
		),
	)
	defer span.End()

	query := `
		UPDATE items
		SET inventory = inventory - $1
		WHERE id = $2 AND inventory >= $1
	`
	res, err := c.db.ExecContext(ctx, query, quantity, itemID)
	if err != nil {
		return fmt.Errorf("failed to update inventory for item %d: %w", itemID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result for item %d: %w", itemID, err)
	}
	if affected == 0 {
		// Either the item does not exist or the stock is too low.
		if _, err := c.ItemByID(ctx, itemID); err != nil {
			return err
		}
		span.SetAttributes(attribute.Bool("stock.insufficient", true))
		return ErrInsufficientStock
	}
	return nil
}

// All returns every product category.
func (c *postgresCatalog) All(ctx context.Context) ([]Category, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, description FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}
