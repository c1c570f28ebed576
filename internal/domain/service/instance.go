package service

import (
	"github.com/familybell/bell-scheduler/internal/domain/contract"
	"github.com/familybell/bell-scheduler/internal/domain/entity"
	"go.uber.org/zap"
)

type Instance struct {
	Bells     *bellService
	Scheduler *scheduler
}

func NewInstance(store contract.DocumentStore, announcer contract.Announcer, media contract.MediaPlayer, events contract.EventPublisher, globalTTS entity.TTSDefaults, logger *zap.Logger) *Instance {
	dispatcher := newDispatcher(announcer, media, logger)
	bells := newBellService(store, dispatcher, events, globalTTS, logger)
	scheduler := newScheduler(bells.scheduleSnapshot, dispatcher, logger)
	bells.scheduler = scheduler

	return &Instance{
		Bells:     bells,
		Scheduler: scheduler,
	}
}
