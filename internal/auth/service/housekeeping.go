package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/wesports/auth/internal/auth/domain"
	"github.com/wesports/auth/internal/auth/store"
	"github.com/wesports/auth/pkg/jwtx"
)

// HousekeepingService periodically deletes aged-out OTP rows so the table
// stays bounded. Expiry itself is enforced at read time; this only reclaims
// storage.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

// run is the main background worker loop.
func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup deletes rows old enough that no code path can still accept them.
// The cutoff uses the registration-token TTL on top of the OTP TTL so a
// just-minted registration token never loses its marker mid-flight.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()

	cutoff := time.Now().UTC().Add(-(domain.OTPTTL + markerGrace))
	deleted, err := s.Store.OTPs().DeleteExpiredOTPs(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to delete expired otp rows", "error", err)
		return
	}

	if deleted > 0 {
		s.Logger.Info("housekeeping cleanup completed", "deleted_otps", deleted)
	} else {
		s.Logger.Debug("housekeeping cleanup completed", "deleted_otps", 0)
	}
}

// markerGrace keeps EMAIL_VERIFIED markers alive for at least the
// registration token lifetime past OTP expiry.
const markerGrace = jwtx.DefaultRegistrationTokenTTL
