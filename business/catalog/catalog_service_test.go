package catalog

import (
	"context"
	"errors"
	"testing"

	"whyEngine/domain"
)

type fakeItemRepo struct {
	items   map[string][]domain.Item
	err     error
	domains []string
}

func (r *fakeItemRepo) FindByDomain(ctx context.Context, domainName string) ([]domain.Item, error) {
	if r.err != nil {
		return nil, r.err
	}
	rows, ok := r.items[domainName]
	if !ok {
		return nil, ErrDomainNotFound
	}
	return rows, nil
}

func (r *fakeItemRepo) Domains(ctx context.Context) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.domains, nil
}

func TestItemsDropsInvalidRecords(t *testing.T) {
	repo := &fakeItemRepo{items: map[string][]domain.Item{
		"campus": {
			{ItemID: "ok", Price: 10, TimeMinutes: 5, ComfortScore: 0.5, ExplorationScore: 0.5},
			{ItemID: "neg-price", Price: -1, TimeMinutes: 5, ComfortScore: 0.5, ExplorationScore: 0.5},
			{ItemID: "bad-score", Price: 10, TimeMinutes: 5, ComfortScore: 1.5, ExplorationScore: 0.5},
			{ItemID: "", Price: 10, TimeMinutes: 5, ComfortScore: 0.5, ExplorationScore: 0.5},
		},
	}}
	svc := NewService(repo)

	items, err := svc.Items(context.Background(), "campus")
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 1 || items[0].ItemID != "ok" {
		t.Errorf("items = %v, want only the valid record", items)
	}
}

func TestItemsUnknownDomain(t *testing.T) {
	svc := NewService(&fakeItemRepo{items: map[string][]domain.Item{}})

	_, err := svc.Items(context.Background(), "mars")
	if !errors.Is(err, ErrDomainNotFound) {
		t.Fatalf("err = %v, want ErrDomainNotFound", err)
	}
}

func TestItemsEmptyDomainName(t *testing.T) {
	svc := NewService(&fakeItemRepo{})

	if _, err := svc.Items(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty domain name")
	}
}

func TestDomains(t *testing.T) {
	svc := NewService(&fakeItemRepo{domains: []string{"campus", "retail", "travel"}})

	domains, err := svc.Domains(context.Background())
	if err != nil {
		t.Fatalf("Domains: %v", err)
	}
	if len(domains) != 3 {
		t.Errorf("domains = %v, want 3 entries", domains)
	}
}
