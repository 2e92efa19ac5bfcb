package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"

	"reviewsBack/internal/metrics"
)

// AuthHeader carries the caller's token inbound and the server token on the
// verification request.
const AuthHeader = "BookBNBAuthorization"

var (
	ErrInvalidToken            = errors.New("services: invalid token")
	ErrVerificationUnavailable = errors.New("services: token verification unavailable")
)

const breakerName = "token-verifier"

// TokenVerifier asks the gateway whether an inbound token is valid.
type TokenVerifier struct {
	url         string
	serverToken string
	client      *http.Client
	cb          *gobreaker.CircuitBreaker[struct{}]
}

func NewTokenVerifier(url, serverToken string, client *http.Client) *TokenVerifier {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// a rejected token means the gateway answered
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrInvalidToken)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &TokenVerifier{url: url, serverToken: serverToken, client: client, cb: cb}
}

// Verify returns nil for a valid token, ErrInvalidToken when the gateway
// rejects it and ErrVerificationUnavailable when the gateway can't be reached.
func (v *TokenVerifier) Verify(ctx context.Context, token string) error {
	_, err := v.cb.Execute(func() (struct{}, error) {
		return struct{}{}, v.verify(ctx, token)
	})
	switch {
	case err == nil:
		metrics.RecordTokenVerification("valid")
		return nil
	case errors.Is(err, ErrInvalidToken):
		metrics.RecordTokenVerification("invalid")
		return err
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordTokenVerification("rejected")
		return fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
	default:
		metrics.RecordTokenVerification("unavailable")
		if errors.Is(err, ErrVerificationUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
	}
}

func (v *TokenVerifier) verify(ctx context.Context, token string) error {
	body, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return fmt.Errorf("marshal verification request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(AuthHeader, v.serverToken)

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: gateway returned %d", ErrVerificationUnavailable, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: gateway returned %d", ErrInvalidToken, resp.StatusCode)
	}
	return nil
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
