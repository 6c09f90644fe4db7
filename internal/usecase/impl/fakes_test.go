package impl

import (
	"context"
	"sync"
	"time"

	"rentql/internal/domain/service"
)

// plainHasher keeps scenario tests fast; digests are reversible.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "plain:" + password, nil
}

func (plainHasher) Check(password, hash string) (bool, error) {
	return hash == "plain:"+password, nil
}

func (plainHasher) ValidatePasswordStrength(string) error {
	return nil
}

type staticTokens struct{}

func (staticTokens) Issue(claims service.TokenClaims) (string, error) {
	return "token-" + claims.UserID.String(), nil
}

func (staticTokens) Verify(string) (*service.TokenClaims, error) {
	return nil, service.ErrInvalidSignature
}

func (staticTokens) TTL() time.Duration {
	return time.Hour
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.AccountDeletedEvent
}

func (p *recordingPublisher) PublishAccountDeleted(_ context.Context, event *service.AccountDeletedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}
