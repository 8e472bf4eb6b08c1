// Package service resolves caller references into passages
package service

import (
	"context"
	"strings"

	"biblia/internal/adapters/provider/bibleapi"
	"biblia/internal/platform/logger"
	"biblia/internal/services/api/bible/domain"
)

// DefaultRef is used when the caller sends no reference
const DefaultRef = "Joao 3:16"

// Provider is the slice of the provider client the service needs
type Provider interface {
	Fetch(ctx context.Context, rawRef string) (bibleapi.Result, error)
}

// Service defines the service contract for lookups
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct {
	provider   Provider
	defaultRef string
}

// New creates the service. defaultRef falls back to DefaultRef
func New(p Provider, defaultRef string) *Svc {
	if p == nil {
		panic("bible.Service requires a non nil Provider")
	}
	if strings.TrimSpace(defaultRef) == "" {
		defaultRef = DefaultRef
	}
	return &Svc{provider: p, defaultRef: defaultRef}
}

// Lookup fetches the passage for in.Ref. Provider failures come back as
// errors that carry the provider status
func (s *Svc) Lookup(ctx context.Context, in domain.LookupInput) (domain.Passage, error) {
	ref := strings.TrimSpace(in.Ref)
	if ref == "" {
		ref = s.defaultRef
	}
	ctx = logger.WithRef(ctx, ref)

	res, err := s.provider.Fetch(ctx, ref)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("sent", res.SourceRef).Msg("bible lookup failed")
		return domain.Passage{}, err
	}
	return domain.Passage{
		Text:        res.Text,
		Ref:         res.SourceRef,
		Source:      res.ProviderName,
		Translation: res.Translation,
		Matched:     res.Matched,
	}, nil
}
