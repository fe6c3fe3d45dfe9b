package catalog

import (
	"context"
	"errors"
	"fmt"

	"whyEngine/domain"
	"whyEngine/pkg/logger"
	"whyEngine/pkg/metrics"
)

// ErrDomainNotFound is returned for a domain the catalog does not carry.
var ErrDomainNotFound = errors.New("unknown domain")

// ItemRepository supplies the candidate items per domain. The engine is
// handed the slice read-only; it never mutates catalog records.
type ItemRepository interface {
	FindByDomain(ctx context.Context, domainName string) ([]domain.Item, error)
	Domains(ctx context.Context) ([]string, error)
}

type Service struct {
	repo ItemRepository
}

func NewService(repo ItemRepository) *Service {
	return &Service{repo: repo}
}

// Domains lists the catalog domains available for recommendations.
func (s *Service) Domains(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	domains, err := s.repo.Domains(ctx)
	if err != nil {
		return nil, fmt.Errorf("load domains: %w", err)
	}
	return domains, nil
}

// Items loads a domain's catalog snapshot. Records that violate the item
// invariants are dropped with a warning rather than poisoning scoring;
// an unknown domain surfaces as an error from the repository.
func (s *Service) Items(ctx context.Context, domainName string) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if domainName == "" {
		return nil, fmt.Errorf("domain is required")
	}

	rows, err := s.repo.FindByDomain(ctx, domainName)
	if err != nil {
		return nil, fmt.Errorf("load catalog for domain %q: %w", domainName, err)
	}

	items := make([]domain.Item, 0, len(rows))
	for _, item := range rows {
		if vErr := item.Validate(); vErr != nil {
			logger.Warn("skipping invalid catalog record",
				"domain", domainName,
				"item_id", item.ItemID,
				"error", vErr,
			)
			metrics.InvalidCatalogRecords.WithLabelValues(domainName).Inc()
			continue
		}
		items = append(items, item)
	}

	return items, nil
}
