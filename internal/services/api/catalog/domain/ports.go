package domain

import "context"

// ServicePort defines the catalog contract
type ServicePort interface {
	Search(ctx context.Context, in SearchInput) (View, error)
	Book(ctx context.Context, id string) (BookDetail, error)
}
