package solvecache

import (
	"context"
	"encoding/binary"
	"errors"
	"log/slog"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/mcoot/scrabblesolver/internal/model"
	"github.com/mcoot/scrabblesolver/internal/storage"
)

// Fingerprint identifies a search by its inputs. Tile order in the rack does
// not change the key.
func Fingerprint(locale string, dictDigest uint64, state *model.BoardState, rack model.Rack) string {
	h := xxhash.New()
	_, _ = h.WriteString(locale)
	_, _ = h.Write([]byte{0})

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], dictDigest)
	_, _ = h.Write(buf[:])

	for _, row := range state.Rows() {
		_, _ = h.WriteString(row)
		_, _ = h.Write([]byte{'\n'})
	}
	_, _ = h.WriteString(rack.Sorted().String())
	return strconv.FormatUint(h.Sum64(), 16)
}

// Service caches ranked search results in storage
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new SolveCacheService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Get returns the cached ranked placements for the fingerprint.
// A miss is reported as model.ErrSolutionNotFound.
func (s *Service) Get(ctx context.Context, key string) ([]model.Placement, error) {
	placements, err := s.storage.GetSolution(ctx, key)
	if err != nil {
		if !errors.Is(err, model.ErrSolutionNotFound) {
			s.logger.Warn("solution cache read failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return nil, err
	}
	s.logger.Debug("solution cache hit", slog.String("key", key))
	return placements, nil
}

// Put stores ranked placements under the fingerprint
func (s *Service) Put(ctx context.Context, key string, placements []model.Placement) error {
	if err := s.storage.SaveSolution(ctx, key, placements); err != nil {
		s.logger.Warn("solution cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// ServiceInterface is implemented by Service
type ServiceInterface interface {
	Get(ctx context.Context, key string) ([]model.Placement, error)
	Put(ctx context.Context, key string, placements []model.Placement) error
}

var _ ServiceInterface = (*Service)(nil)
