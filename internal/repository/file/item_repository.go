package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"whyEngine/business/catalog"
	"whyEngine/domain"
)

// ItemRepository serves catalog items from per-domain JSON files
// (<dir>/<domain>.json). It is the demo/dev catalog source; files are
// read once and held in memory, which also makes the snapshot stable
// across requests.
type ItemRepository struct {
	dir   string
	cache map[string][]domain.Item
}

var _ catalog.ItemRepository = (*ItemRepository)(nil)

func NewItemRepository(dir string) (*ItemRepository, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog dir %q: %w", dir, err)
	}

	cache := make(map[string][]domain.Item)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %q: %w", entry.Name(), err)
		}

		var items []domain.Item
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("failed to parse catalog file %q: %w", entry.Name(), err)
		}
		for i := range items {
			items[i].Domain = name
		}
		cache[name] = items
	}

	if len(cache) == 0 {
		return nil, fmt.Errorf("no catalog files found in %q", dir)
	}

	return &ItemRepository{dir: dir, cache: cache}, nil
}

func (r *ItemRepository) FindByDomain(ctx context.Context, domainName string) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	items, ok := r.cache[domainName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", catalog.ErrDomainNotFound, domainName)
	}

	// hand out a copy so callers can never mutate the snapshot
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out, nil
}

func (r *ItemRepository) Domains(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	domains := make([]string, 0, len(r.cache))
	for name := range r.cache {
		domains = append(domains, name)
	}
	sort.Strings(domains)
	return domains, nil
}
