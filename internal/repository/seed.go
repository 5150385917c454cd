package repository

import (
	"context"
	"fmt"
)

// Seed copies every customer of src into dst and returns number of copied customers
func Seed(ctx context.Context, src CustomerRepository, dst CustomerSeeder) (int, error) {
	customers, err := src.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read customers to seed - %w", err)
	}

	for _, c := range customers {
		if err := dst.Upsert(ctx, c); err != nil {
			return 0, fmt.Errorf("failed to seed customer %s - %w", c.ID, err)
		}
	}
	return len(customers), nil
}
