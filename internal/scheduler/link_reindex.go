package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Reindexer rebuilds every article's verse links.
type Reindexer interface {
	ReindexAll(ctx context.Context) (int, error)
}

// LinkReindexScheduler periodically rebuilds article to verse links so they
// stay consistent with the current revisions even if an indexing task was lost.
type LinkReindexScheduler struct {
	reindexer Reindexer
	schedule  string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
	ctx       context.Context
	cancel    context.CancelFunc
	running   sync.Mutex
}

// NewLinkReindexScheduler creates a new scheduler instance
func NewLinkReindexScheduler(reindexer Reindexer, schedule string) *LinkReindexScheduler {
	return &LinkReindexScheduler{
		reindexer: reindexer,
		schedule:  schedule,
		cron:      cron.New(cron.WithParser(newParser())),
	}
}

// Start registers the job and starts the cron loop. The scheduler stops when ctx is done.
func (s *LinkReindexScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	entryID, err := s.cron.AddFunc(s.schedule, func() { s.run(runCtx) })
	if err != nil {
		cancel()
		return fmt.Errorf("failed to schedule reindex job: %w", err)
	}
	s.entryID = entryID
	s.ctx, s.cancel = runCtx, cancel

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := GetNextRunTime(s.schedule)
	log.Printf("[SCHEDULER] Link reindex: started with schedule '%s' (%s). Next run: %v",
		s.schedule, GetCronDescription(s.schedule), nextRun)

	go func(done <-chan struct{}) {
		<-done
		s.Stop()
	}(s.ctx.Done())

	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *LinkReindexScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	s.cancel()
	done := s.cron.Stop()
	<-done.Done()

	s.cron.Remove(s.entryID)
	s.isRunning = false

	log.Printf("[SCHEDULER] Link reindex: stopped")
}

// RunNow triggers an immediate reindex in the background.
func (s *LinkReindexScheduler) RunNow() {
	s.mu.RLock()
	ctx := s.ctx
	s.mu.RUnlock()
	if ctx == nil {
		ctx = context.Background()
	}
	go s.run(ctx)
}

// IsRunning returns whether the scheduler is active
func (s *LinkReindexScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next reindex will occur
func (s *LinkReindexScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// run executes one reindex. Overlapping runs are skipped.
func (s *LinkReindexScheduler) run(ctx context.Context) {
	if !s.running.TryLock() {
		log.Printf("[SCHEDULER] Link reindex: skipped, previous run still in progress")
		return
	}
	defer s.running.Unlock()

	start := time.Now()
	n, err := s.reindexer.ReindexAll(ctx)
	if err != nil {
		log.Printf("[SCHEDULER] Link reindex: failed: %v", err)
		return
	}
	log.Printf("[SCHEDULER] Link reindex: %d links in %v", n, time.Since(start).Round(time.Millisecond))
}
