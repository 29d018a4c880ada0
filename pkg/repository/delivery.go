package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/craftdays/craftfeed/pkg/domain"
)

// DeliveryRepository keeps a log of WebSub hub notifications
type DeliveryRepository struct {
	db *sqlx.DB
}

// NewDeliveryRepository creates a new delivery repository
func NewDeliveryRepository(db *sqlx.DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

// SaveDelivery records the outcome of one hub notification
func (r *DeliveryRepository) SaveDelivery(ctx context.Context, hubURL string, res domain.NotificationResult) error {
	return withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO websub_deliveries (hub_url, feed_url, success, error, status_code)
			VALUES (?, ?, ?, ?, ?)`,
			hubURL, res.FeedURL, res.Success, res.Error, res.StatusCode)
		return writeErr("save delivery", err)
	})
}

// RecentDeliveries returns up to limit latest deliveries, newest first
func (r *DeliveryRepository) RecentDeliveries(ctx context.Context, limit int) ([]domain.Delivery, error) {
	if limit <= 0 {
		limit = 20
	}
	var res []domain.Delivery
	query := `
		SELECT id, hub_url, feed_url, success, error, status_code, created_at
		FROM websub_deliveries
		ORDER BY id DESC
		LIMIT ?`
	if err := r.db.SelectContext(ctx, &res, query, limit); err != nil {
		return nil, fmt.Errorf("select deliveries: %w", err)
	}
	return res, nil
}

// PruneDeliveries keeps only the latest keep records
func (r *DeliveryRepository) PruneDeliveries(ctx context.Context, keep int) (int64, error) {
	var removed int64
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `
			DELETE FROM websub_deliveries
			WHERE id NOT IN (SELECT id FROM websub_deliveries ORDER BY id DESC LIMIT ?)`, keep)
		if err != nil {
			return writeErr("prune deliveries", err)
		}
		removed, err = res.RowsAffected()
		return writeErr("prune deliveries rows", err)
	})
	return removed, err
}
