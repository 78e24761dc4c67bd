// Package mock provides function-field mock implementations of the root
// package interfaces for tests.
package mock

import (
	"context"

	deprecations "github.com/leblancfg/deprecations-rss"
)

var _ deprecations.DeprecationService = (*DeprecationService)(nil)

// DeprecationService is a mock implementation of
// deprecations.DeprecationService.
type DeprecationService struct {
	CreateDeprecationFn            func(ctx context.Context, item *deprecations.DeprecationItem) error
	FindDeprecationsFn             func(ctx context.Context, filter deprecations.DeprecationFilter) ([]*deprecations.DeprecationItem, error)
	DeleteDeprecationsByProviderFn func(ctx context.Context, provider string) error
}

func (s *DeprecationService) CreateDeprecation(ctx context.Context, item *deprecations.DeprecationItem) error {
	return s.CreateDeprecationFn(ctx, item)
}

func (s *DeprecationService) FindDeprecations(ctx context.Context, filter deprecations.DeprecationFilter) ([]*deprecations.DeprecationItem, error) {
	return s.FindDeprecationsFn(ctx, filter)
}

func (s *DeprecationService) DeleteDeprecationsByProvider(ctx context.Context, provider string) error {
	return s.DeleteDeprecationsByProviderFn(ctx, provider)
}

var _ deprecations.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of deprecations.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
