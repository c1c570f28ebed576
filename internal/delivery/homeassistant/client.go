package homeassistant

import (
	"context"
	"fmt"
	"time"

	"github.com/familybell/bell-scheduler/internal/domain/contract"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	speakPath     = "/api/services/tts/speak"
	playMediaPath = "/api/services/media_player/play_media"
)

// Client calls the Home Assistant REST API for the two delivery collaborators:
// tts.speak and media_player.play_media.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func New(baseURL, token string, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if token != "" {
		httpClient.SetAuthToken(token)
	}

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

type speakRequest struct {
	EntityID            string            `json:"entity_id"`
	Message             string            `json:"message"`
	MediaPlayerEntityID []string          `json:"media_player_entity_id"`
	Language            string            `json:"language,omitempty"`
	Options             map[string]string `json:"options,omitempty"`
}

// Announce calls tts.speak on the given provider entity.
func (c *Client) Announce(ctx context.Context, a contract.Announcement) error {
	body := speakRequest{
		EntityID:            a.Provider,
		Message:             a.Message,
		MediaPlayerEntityID: a.Targets,
		Language:            a.Language,
	}
	if a.Voice != "" {
		body.Options = map[string]string{"voice": a.Voice}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(speakPath)
	if err != nil {
		return fmt.Errorf("calling tts.speak: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("tts.speak returned %s: %s", resp.Status(), resp.String())
	}

	c.logger.Info("announcement dispatched",
		zap.String("provider", a.Provider),
		zap.Strings("targets", a.Targets),
	)
	return nil
}

type playMediaRequest struct {
	EntityID         []string `json:"entity_id"`
	MediaContentID   string   `json:"media_content_id"`
	MediaContentType string   `json:"media_content_type"`
	Announce         bool     `json:"announce"`
}

// PlayMedia calls media_player.play_media on the given targets.
func (c *Client) PlayMedia(ctx context.Context, targets []string, mediaID, mediaType string, announce bool) error {
	body := playMediaRequest{
		EntityID:         targets,
		MediaContentID:   mediaID,
		MediaContentType: mediaType,
		Announce:         announce,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(playMediaPath)
	if err != nil {
		return fmt.Errorf("calling media_player.play_media: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("media_player.play_media returned %s: %s", resp.Status(), resp.String())
	}

	c.logger.Debug("media dispatched",
		zap.String("media_content_id", mediaID),
		zap.Strings("targets", targets),
	)
	return nil
}
