package services

import "context"

// Service is a single use case. Decorators wrap a Service with the same
// Input and Result to add behaviour around it.
type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}
