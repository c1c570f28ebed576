package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/familybell/bell-scheduler/internal/domain"
	"github.com/familybell/bell-scheduler/internal/domain/entity"
	"go.uber.org/zap"
)

// snapshotFunc hands the scheduler the current bells, vacation window and
// global TTS defaults. The scheduler never reaches into the store directly.
type snapshotFunc func() (bells []entity.Bell, vacation entity.Vacation, defaults entity.TTSDefaults)

type scheduler struct {
	snapshot   snapshotFunc
	dispatcher *dispatcher
	logger     *zap.Logger
	now        func() time.Time

	mu     sync.Mutex
	timers []*time.Timer
}

func newScheduler(snapshot snapshotFunc, dispatcher *dispatcher, logger *zap.Logger) *scheduler {
	return &scheduler{
		snapshot:   snapshot,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Rebuild cancels every pending timer and re-arms one timer per enabled bell
// with a non-empty day list. Full teardown on every change is intentional: it
// is O(bells) and can never leave a stale timer behind.
func (s *scheduler) Rebuild() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAllLocked()

	bells, vacation, defaults := s.snapshot()
	now := s.now()

	suppressed, err := vacationSuppressed(vacation, now)
	if err != nil {
		// Bells keep ringing on a corrupt vacation window rather than
		// silently stopping.
		s.logger.Error("invalid vacation window, scheduling as unsuppressed", zap.Error(err))
	}
	if suppressed {
		s.logger.Info("vacation active, no bells scheduled",
			zap.String("start", vacation.Start),
			zap.String("end", vacation.End),
		)
		return
	}

	for _, bell := range bells {
		if !bell.Enabled || len(bell.Days) == 0 {
			continue
		}

		next, err := nextOccurrence(bell, now)
		if err != nil {
			s.logger.Warn("skipping bell with invalid time",
				zap.String("bell_id", bell.ID),
				zap.String("time", bell.Time),
				zap.Error(err),
			)
			continue
		}

		// The timer carries value copies; later edits to the stored bell
		// cannot affect an already armed firing.
		armed := bell.Clone()
		armedDefaults := defaults
		timer := time.AfterFunc(next.Sub(now), func() {
			s.fire(armed, armedDefaults)
		})
		s.timers = append(s.timers, timer)

		s.logger.Debug("bell armed",
			zap.String("bell_id", bell.ID),
			zap.Time("next", next),
		)
	}
}

// Stop cancels all pending timers without re-arming.
func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAllLocked()
}

// TimerCount reports how many timers are currently armed.
func (s *scheduler) TimerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func (s *scheduler) cancelAllLocked() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

// fire runs when a bell's timer elapses. The day check happens here, at fire
// time: a bell can be armed for a day it is inactive on, in which case firing
// only triggers the rebuild that arms the following day.
func (s *scheduler) fire(bell entity.Bell, defaults entity.TTSDefaults) {
	now := s.now()
	if bell.FiresOn(now.Weekday()) {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		if err := s.dispatcher.Dispatch(ctx, bell, defaults); err != nil {
			s.logger.Error("bell delivery failed",
				zap.String("bell_id", bell.ID),
				zap.Error(err),
			)
		}
		cancel()
	}

	s.Rebuild()
}

// nextOccurrence returns the bell's candidate instant on now's date, or the
// same wall-clock time one day later when that has already passed.
func nextOccurrence(bell entity.Bell, now time.Time) (time.Time, error) {
	hour, minute, err := parseClock(bell.Time)
	if err != nil {
		return time.Time{}, err
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next, nil
}

func parseClock(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format: %q", value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in time: %q", value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in time: %q", value)
	}

	return hour, minute, nil
}

// vacationSuppressed reports whether today falls inside an enabled vacation
// window. Missing bounds never suppress; unparseable bounds return an error
// and the caller decides (we log and keep scheduling).
func vacationSuppressed(v entity.Vacation, now time.Time) (bool, error) {
	if !v.Enabled || v.Start == "" || v.End == "" {
		return false, nil
	}

	start, err := time.ParseInLocation(domain.VacationDateFormat, v.Start, now.Location())
	if err != nil {
		return false, fmt.Errorf("parsing vacation start: %w", err)
	}
	end, err := time.ParseInLocation(domain.VacationDateFormat, v.End, now.Location())
	if err != nil {
		return false, fmt.Errorf("parsing vacation end: %w", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !today.Before(start) && !today.After(end), nil
}
