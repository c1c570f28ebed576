package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/familybell/bell-scheduler/internal/domain"
	"github.com/familybell/bell-scheduler/internal/domain/contract"
	"github.com/familybell/bell-scheduler/internal/domain/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// bellService owns the in-memory bell document and implements the command
// surface. Every mutation follows the same sequence: validate, mutate,
// persist, publish, rebuild.
type bellService struct {
	store      contract.DocumentStore
	dispatcher *dispatcher
	events     contract.EventPublisher
	scheduler  *scheduler // set by NewInstance after construction
	logger     *zap.Logger

	mu        sync.RWMutex
	doc       *entity.Document
	globalTTS entity.TTSDefaults
}

func newBellService(store contract.DocumentStore, dispatcher *dispatcher, events contract.EventPublisher, globalTTS entity.TTSDefaults, logger *zap.Logger) *bellService {
	return &bellService{
		store:      store,
		dispatcher: dispatcher,
		events:     events,
		logger:     logger,
		doc:        entity.DefaultDocument(),
		globalTTS:  globalTTS,
	}
}

// LoadData replaces the in-memory document with the stored one. An absent
// document leaves the fresh-install default in place.
func (s *bellService) LoadData(ctx context.Context) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading bell data: %w", err)
	}
	if doc == nil {
		s.logger.Info("no stored bell data, starting empty")
		return nil
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	s.logger.Info("bell data loaded", zap.Int("bells", len(doc.Bells)))
	return nil
}

// GetData returns the full read-only composite the front end renders.
func (s *bellService) GetData() entity.DataSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := s.doc.Clone()
	return entity.DataSnapshot{
		Bells:        doc.Bells,
		Vacation:     doc.Vacation,
		LastDefaults: doc.LastDefaults,
		GlobalTTS:    s.globalTTS,
		Version:      domain.StorageVersion,
	}
}

// UpsertBell replaces an existing bell by id or appends a new one, assigning
// an id when the caller sent none. The last-defaults cache always takes the
// bell's override fields, empty values included, so an explicit clear is
// remembered too.
func (s *bellService) UpsertBell(ctx context.Context, bell entity.Bell) error {
	if err := validateBell(bell); err != nil {
		return err
	}

	s.mu.Lock()
	if bell.ID == "" {
		bell.ID = uuid.NewString()
	}
	stored := bell.Clone()

	replaced := false
	for i := range s.doc.Bells {
		if s.doc.Bells[i].ID == stored.ID {
			s.doc.Bells[i] = stored
			replaced = true
			break
		}
	}
	if !replaced {
		s.doc.Bells = append(s.doc.Bells, stored)
	}

	s.doc.LastDefaults = &entity.TTSDefaults{
		Provider: stored.TTSProvider,
		Voice:    stored.TTSVoice,
		Language: stored.TTSLanguage,
	}
	s.mu.Unlock()

	s.logger.Info("bell saved",
		zap.String("bell_id", stored.ID),
		zap.Bool("replaced", replaced),
	)
	return s.persistAndRebuild(ctx)
}

// DeleteBell removes a bell by id. An unknown id is not an error.
func (s *bellService) DeleteBell(ctx context.Context, id string) error {
	s.mu.Lock()
	kept := s.doc.Bells[:0]
	for _, b := range s.doc.Bells {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.doc.Bells = kept
	s.mu.Unlock()

	s.logger.Info("bell deleted", zap.String("bell_id", id))
	return s.persistAndRebuild(ctx)
}

// SetVacation replaces the vacation window wholesale.
func (s *bellService) SetVacation(ctx context.Context, v entity.Vacation) error {
	if err := validateVacation(v); err != nil {
		return err
	}

	s.mu.Lock()
	s.doc.Vacation = v
	s.mu.Unlock()

	s.logger.Info("vacation window updated",
		zap.String("start", v.Start),
		zap.String("end", v.End),
		zap.Bool("enabled", v.Enabled),
	)
	return s.persistAndRebuild(ctx)
}

// TestBell fires the given (possibly unsaved) bell immediately, bypassing the
// scheduler and the day and time checks. Dispatcher errors surface to the
// caller instead of being swallowed.
func (s *bellService) TestBell(ctx context.Context, bell entity.Bell) error {
	return s.dispatcher.Dispatch(ctx, bell.Clone(), s.GlobalTTS())
}

// GlobalTTS returns the global delivery defaults currently in effect.
func (s *bellService) GlobalTTS() entity.TTSDefaults {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.globalTTS
}

// UpdateGlobalTTS is the settings-update path for the global defaults. They
// live in configuration, not in the persisted document, so this only mutates
// memory, notifies and rebuilds.
func (s *bellService) UpdateGlobalTTS(ctx context.Context, defaults entity.TTSDefaults) error {
	s.mu.Lock()
	s.globalTTS = defaults
	s.mu.Unlock()

	s.logger.Info("global tts defaults updated", zap.String("provider", defaults.Provider))

	if err := s.events.PublishDataChanged(ctx); err != nil {
		s.logger.Warn("failed to publish data changed event", zap.Error(err))
	}
	s.scheduler.Rebuild()
	return nil
}

// persistAndRebuild saves the current document, notifies listeners and
// rebuilds the timer set. The rebuild happens even when the save fails: the
// in-memory state already changed and the schedule must match it. The save
// error still reaches the caller.
func (s *bellService) persistAndRebuild(ctx context.Context) error {
	s.mu.RLock()
	doc := s.doc.Clone()
	s.mu.RUnlock()

	saveErr := s.store.Save(ctx, doc)
	if saveErr != nil {
		saveErr = fmt.Errorf("persisting bell data: %w", saveErr)
		s.logger.Error("failed to persist bell data", zap.Error(saveErr))
	}

	if err := s.events.PublishDataChanged(ctx); err != nil {
		s.logger.Warn("failed to publish data changed event", zap.Error(err))
	}

	s.scheduler.Rebuild()
	return saveErr
}

// scheduleSnapshot hands the scheduler deep copies of the current state.
func (s *bellService) scheduleSnapshot() ([]entity.Bell, entity.Vacation, entity.TTSDefaults) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bells := make([]entity.Bell, 0, len(s.doc.Bells))
	for _, b := range s.doc.Bells {
		bells = append(bells, b.Clone())
	}
	return bells, s.doc.Vacation, s.globalTTS
}

func validateBell(bell entity.Bell) error {
	if _, _, err := parseClock(bell.Time); err != nil {
		return domain.NewValidationError("time", err.Error())
	}
	for _, day := range bell.Days {
		if !domain.ValidDayTokens[day] {
			return domain.NewValidationError("days", fmt.Sprintf("unknown day token %q", day))
		}
	}
	return nil
}

func validateVacation(v entity.Vacation) error {
	if v.Start != "" {
		if _, err := time.Parse(domain.VacationDateFormat, v.Start); err != nil {
			return domain.NewValidationError("start", err.Error())
		}
	}
	if v.End != "" {
		if _, err := time.Parse(domain.VacationDateFormat, v.End); err != nil {
			return domain.NewValidationError("end", err.Error())
		}
	}
	return nil
}
