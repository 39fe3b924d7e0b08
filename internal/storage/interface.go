package storage

import (
	"context"

	"github.com/mcoot/scrabblesolver/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Dictionary operations, keyed by locale code
	GetDictionaryWords(ctx context.Context, locale string) ([]string, error)
	SaveDictionaryWords(ctx context.Context, locale string, words []string) error

	// Solution cache operations, keyed by board/rack fingerprint
	GetSolution(ctx context.Context, key string) ([]model.Placement, error)
	SaveSolution(ctx context.Context, key string, placements []model.Placement) error
}
