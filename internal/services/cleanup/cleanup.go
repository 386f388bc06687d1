// Package cleanup removes uploads that were never finished, such as those
// interrupted by a crash or a dropped connection.
package cleanup

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/killallgit/vidcode-api/internal/services/storage"
	"github.com/rs/zerolog/log"
)

// Service periodically sweeps stale in-progress uploads under the storage root
type Service struct {
	root            string
	maxAge          time.Duration
	cleanupInterval time.Duration
	now             func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates a new cleanup service. Non-positive durations fall back
// to one hour of age and a fifteen minute interval.
func NewService(root string, maxAge, cleanupInterval time.Duration) *Service {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 15 * time.Minute
	}
	return &Service{
		root:            root,
		maxAge:          maxAge,
		cleanupInterval: cleanupInterval,
		now:             time.Now,
	}
}

// Start runs one sweep, then keeps sweeping in the background until ctx is
// cancelled or Stop is called
func (s *Service) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.sweepAndLog()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweepAndLog()
			case <-ctx.Done():
				log.Debug().Msg("cleanup service stopped")
				return
			}
		}
	}()

	log.Info().
		Dur("interval", s.cleanupInterval).
		Dur("max_age", s.maxAge).
		Msg("cleanup service started")
}

// Stop stops the background sweep and waits for it to exit
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Service) sweepAndLog() {
	removed, err := s.Sweep()
	if err != nil {
		log.Error().Err(err).Str("root", s.root).Msg("cleanup sweep failed")
		return
	}
	if removed > 0 {
		log.Info().Int("removed", removed).Msg("removed stale uploads")
	}
}

// Sweep removes in-progress uploads older than the max age and returns how
// many were removed. A missing root is not an error.
func (s *Service) Sweep() (int, error) {
	if _, err := os.Stat(s.root); errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}

	cutoff := s.now().Add(-s.maxAge)
	removed := 0
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Entries can vanish while an upload finishes
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !storage.IsTempName(d.Name()) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.ModTime().After(cutoff) {
			return nil
		}

		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Str("path", path).Msg("failed to remove stale upload")
			return nil
		}
		log.Debug().Str("path", path).Msg("removed stale upload")
		removed++
		return nil
	})
	return removed, err
}
