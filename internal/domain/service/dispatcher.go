package service

import (
	"context"
	"fmt"
	"time"

	"github.com/familybell/bell-scheduler/internal/domain"
	"github.com/familybell/bell-scheduler/internal/domain/contract"
	"github.com/familybell/bell-scheduler/internal/domain/entity"
	"go.uber.org/zap"
)

// dispatchTimeout bounds one delivery attempt so a hung collaborator cannot
// wedge a rebuild cycle.
const dispatchTimeout = 30 * time.Second

type dispatcher struct {
	announcer contract.Announcer
	media     contract.MediaPlayer
	logger    *zap.Logger
}

func newDispatcher(announcer contract.Announcer, media contract.MediaPlayer, logger *zap.Logger) *dispatcher {
	return &dispatcher{
		announcer: announcer,
		media:     media,
		logger:    logger,
	}
}

// Dispatch resolves the effective delivery parameters (bell override over
// global default), plays the optional pre-announcement sound, then announces.
func (d *dispatcher) Dispatch(ctx context.Context, bell entity.Bell, defaults entity.TTSDefaults) error {
	provider := firstNonEmpty(bell.TTSProvider, defaults.Provider)
	voice := firstNonEmpty(bell.TTSVoice, defaults.Voice)
	language := firstNonEmpty(bell.TTSLanguage, defaults.Language)

	if provider == "" {
		return domain.ErrNoProviderConfigured
	}

	if bell.Sound != nil && bell.Sound.MediaContentID != "" {
		mediaType := bell.Sound.MediaContentType
		if mediaType == "" {
			mediaType = domain.DefaultMediaType
		}
		if err := d.media.PlayMedia(ctx, bell.Speakers, bell.Sound.MediaContentID, mediaType, true); err != nil {
			// The chime is best effort; the announcement still goes out.
			d.logger.Warn("pre-announcement sound failed",
				zap.String("bell_id", bell.ID),
				zap.Error(err),
			)
		}
	}

	a := contract.Announcement{
		Provider: provider,
		Targets:  bell.Speakers,
		Message:  bell.Message,
	}
	if language != "" && language != domain.DefaultLanguage {
		a.Language = language
	}
	if voice != "" {
		a.Voice = voice
	}

	if err := d.announcer.Announce(ctx, a); err != nil {
		return fmt.Errorf("announcing bell: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
