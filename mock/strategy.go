package mock

import (
	deprecations "github.com/leblancfg/deprecations-rss"
)

var _ deprecations.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of deprecations.Strategy.
type Strategy struct {
	ProviderFn            func() string
	URLFn                 func() string
	ExtractStructuredFn   func(html string) ([]deprecations.DeprecationItem, error)
	ExtractUnstructuredFn func(html string) ([]deprecations.DeprecationItem, error)
}

func (s *Strategy) Provider() string {
	return s.ProviderFn()
}

func (s *Strategy) URL() string {
	return s.URLFn()
}

func (s *Strategy) ExtractStructured(html string) ([]deprecations.DeprecationItem, error) {
	return s.ExtractStructuredFn(html)
}

func (s *Strategy) ExtractUnstructured(html string) ([]deprecations.DeprecationItem, error) {
	if s.ExtractUnstructuredFn == nil {
		return nil, nil
	}
	return s.ExtractUnstructuredFn(html)
}
