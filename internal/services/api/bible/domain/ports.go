package domain

import "context"

// ServicePort defines the lookup contract
type ServicePort interface {
	Lookup(ctx context.Context, in LookupInput) (Passage, error)
}
