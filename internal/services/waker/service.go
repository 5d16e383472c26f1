// Package waker orchestrates Wake-on-LAN requests: parse, build, send, and
// optionally poll the target until it responds.
package waker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fgeck/gowake/internal/models"
	"github.com/fgeck/gowake/internal/services/sender"
	"github.com/fgeck/gowake/internal/wol"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Service defines the interface for wake orchestration.
type Service interface {
	Wake(ctx context.Context, req models.WakeRequest) *models.WakeResult
	WakeAll(ctx context.Context, cfg models.WakeConfig) []models.WakeResult
}

// HTTPClient allows mocking HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Impl implements the waker Service interface.
type Impl struct {
	senderSvc  sender.Service
	httpClient HTTPClient
	logger     zerolog.Logger
}

// New creates a new waker service.
func New(logger zerolog.Logger) *Impl {
	return &Impl{
		senderSvc: sender.New(logger),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// NewWithClients creates a new waker service with custom clients (for testing).
func NewWithClients(logger zerolog.Logger, senderSvc sender.Service, httpClient HTTPClient) *Impl {
	return &Impl{
		senderSvc:  senderSvc,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Wake runs one wake request end to end. Expected failures (bad address,
// bad port, send error, readiness timeout) are reported in the result's
// Error field, never as a panic or a Go error to the caller.
func (s *Impl) Wake(ctx context.Context, req models.WakeRequest) *models.WakeResult {
	if req.BroadcastIP == "" {
		req.BroadcastIP = wol.DefaultBroadcastIP
	}
	if req.Port == 0 {
		req.Port = wol.DefaultPort
	}

	result := &models.WakeResult{
		Name:        req.Name,
		MACAddress:  req.MACAddress,
		BroadcastIP: req.BroadcastIP,
		Port:        req.Port,
		Timestamp:   time.Now(),
	}
	start := result.Timestamp

	addr, err := wol.ParseHardwareAddr(req.MACAddress)
	if err != nil {
		result.Error = err
		return result
	}

	s.logger.Info().
		Str("mac", addr.String()).
		Str("broadcast", req.BroadcastIP).
		Int("port", req.Port).
		Msg("sending wake packet")

	packet := wol.NewMagicPacket(addr)

	if err := s.senderSvc.Send(ctx, packet, req.BroadcastIP, req.Port); err != nil {
		result.Error = err
		return result
	}

	result.PacketSent = true

	// Without a poll URL there is nothing left to wait for.
	if req.PollURL == "" {
		result.TargetReady = true
		result.WaitDuration = time.Since(start)
		return result
	}

	s.logger.Info().
		Str("url", req.PollURL).
		Dur("timeout", req.Timeout).
		Msg("waiting for target to become available")

	if err := s.waitForTarget(ctx, req); err != nil {
		result.WaitDuration = time.Since(start)
		result.Error = err
		return result
	}

	if req.StabilizeWait > 0 {
		s.logger.Debug().
			Str("wait", req.StabilizeWait.Round(time.Millisecond).String()).
			Msg("waiting for target to stabilize")
		select {
		case <-ctx.Done():
			result.WaitDuration = time.Since(start)
			result.Error = ctx.Err()
			return result
		case <-time.After(req.StabilizeWait):
		}
	}

	result.TargetReady = true
	result.WaitDuration = time.Since(start)

	s.logger.Info().
		Dur("duration", result.WaitDuration).
		Msg("target is ready")

	return result
}

// WakeAll wakes every target in the config, one result per target in input
// order. A bad entry never aborts the batch; its result carries the error.
func (s *Impl) WakeAll(ctx context.Context, cfg models.WakeConfig) []models.WakeResult {
	results := make([]models.WakeResult, len(cfg.Targets))

	if cfg.Defaults.Parallel {
		g, ctx := errgroup.WithContext(ctx)
		for i, target := range cfg.Targets {
			i, target := i, target
			g.Go(func() error {
				results[i] = *s.Wake(ctx, target.Request(cfg.Defaults))
				return nil
			})
		}
		// Workers never return errors; Wait only joins them.
		_ = g.Wait()
		return results
	}

	for i, target := range cfg.Targets {
		results[i] = *s.Wake(ctx, target.Request(cfg.Defaults))
	}
	return results
}

func (s *Impl) waitForTarget(ctx context.Context, req models.WakeRequest) error {
	deadline := time.Now().Add(req.Timeout)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("timeout waiting for target at %s", req.PollURL)
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.PollURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := s.httpClient.Do(httpReq)
		if err == nil {
			_ = resp.Body.Close()
			// Any response means the target is up.
			return nil
		}

		s.logger.Debug().Err(err).Msg("target not ready yet")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(req.PollInterval):
		}
	}
}
