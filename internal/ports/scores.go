package ports

import "context"

// ScoreUpdate credits round points to one player.
type ScoreUpdate struct {
	UserID   string
	Points   int64
	Metadata map[string]interface{}
}

// ScorePort defines the interface for the persistent running score of each player.
type ScorePort interface {
	// GetTotal retrieves the points a user has won so far.
	GetTotal(ctx context.Context, userID string) (int64, error)

	// Credit applies round awards. Zero-point updates are skipped.
	Credit(ctx context.Context, updates []ScoreUpdate) error
}
