package models

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/friendsofgo/errors"
	"github.com/google/uuid"
)

const schema = `
	CREATE TABLE IF NOT EXISTS items (
		id UUID PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		subtitle TEXT,
		position INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_items_position ON items(position, id);
`

// CreateSchema creates the items table if it does not exist.
func CreateSchema(ctx context.Context, exec boil.ContextExecutor) error {
	if _, err := exec.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "models: unable to create items table")
	}
	return nil
}

// SeedItems inserts count items with positions 1..count and returns them.
// Every third item has no subtitle.
func SeedItems(ctx context.Context, exec boil.ContextExecutor, count int) ([]*Item, error) {
	items := make([]*Item, 0, count)
	base := time.Now().Add(-time.Duration(count) * time.Minute)

	for i := 1; i <= count; i++ {
		item := &Item{
			ID:        uuid.New().String(),
			Title:     fmt.Sprintf("Item %d", i),
			Position:  i,
			CreatedAt: base.Add(time.Duration(i) * time.Minute).UTC().Truncate(time.Microsecond),
		}
		if i%3 != 0 {
			item.Subtitle = null.StringFrom(fmt.Sprintf("Subtitle for item %d", i))
		}

		_, err := exec.ExecContext(ctx,
			`INSERT INTO items (id, title, subtitle, position, created_at) VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.Title, item.Subtitle, item.Position, item.CreatedAt,
		)
		if err != nil {
			return nil, errors.Wrapf(err, "models: unable to insert item %d", i)
		}

		items = append(items, item)
	}

	return items, nil
}

// TruncateItems removes every row from the items table.
func TruncateItems(ctx context.Context, exec boil.ContextExecutor) error {
	if _, err := exec.ExecContext(ctx, "TRUNCATE TABLE items"); err != nil {
		return errors.Wrap(err, "models: unable to truncate items")
	}
	return nil
}
