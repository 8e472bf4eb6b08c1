package module

import (
	"context"

	"biblia/internal/adapters/provider/bibleapi"
	bibledom "biblia/internal/services/api/bible/domain"
)

// Ports is what the bible module offers other modules
type Ports struct {
	Lookup   bibledom.ServicePort
	Provider ProviderPort
}

// ProviderPort exposes provider health and settings without the fetch path
type ProviderPort interface {
	Ping(ctx context.Context) error
	Status() bibleapi.ConfigStatus
}
