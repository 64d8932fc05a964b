package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bunny-dash/internal/sim"
)

// BestScore adapts a Store to the simulation's best score hook. Storage
// failures are logged and the game carries on without persistence.
type BestScore struct {
	store  *Store
	logger *log.Logger
}

// NewBestScore creates the adapter. A nil store makes it a no-op.
func NewBestScore(store *Store, logger *log.Logger) *BestScore {
	if logger == nil {
		logger = log.Default()
	}
	return &BestScore{store: store, logger: logger}
}

// LoadBest returns the stored best score, or 0 on failure.
func (b *BestScore) LoadBest() int {
	if b.store == nil {
		return 0
	}
	best, err := b.store.BestScore()
	if err != nil {
		b.logger.Warn("cannot load best score", "err", err)
		return 0
	}
	return best
}

// SaveBest stores a new best score.
func (b *BestScore) SaveBest(score int) {
	if b.store == nil {
		return
	}
	if err := b.store.SaveBest(score); err != nil {
		b.logger.Warn("cannot save best score", "score", score, "err", err)
		return
	}
	b.logger.Debug("best score saved", "score", score)
}

// Ensure BestScore implements the simulation hook
var _ sim.BestScoreStore = (*BestScore)(nil)
