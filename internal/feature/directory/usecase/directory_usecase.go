package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"market_backend/internal/feature/directory/domain/entity"
)

// DefaultNamespaces is the fixed resolution order for ticker lookups.
// A code present in more than one namespace resolves to the first one here.
var DefaultNamespaces = []entity.Namespace{
	{Name: "krx", CodesTable: "krx_codes"},
	{Name: "usx", CodesTable: "usx_codes"},
	{Name: "coin", CodesTable: "coin_codes"},
}

// ListingRepository abstracts the persistence layer for code tables.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ListingRepository interface {
	// ListByTable returns every listing stored in the given code table.
	ListByTable(ctx context.Context, table string) ([]entity.Listing, error)
}

// snapshot is one complete build of the routing directory. It is never
// mutated after construction; Refresh replaces the whole value.
type snapshot struct {
	tables   map[string][]entity.Listing
	origins  map[string]entity.Namespace
	listings map[string]entity.Listing
	loadedAt time.Time
}

// DirectoryUsecase owns the ticker routing directory: which namespace
// (and therefore which table family) a code belongs to.
type DirectoryUsecase struct {
	repo       ListingRepository
	namespaces []entity.Namespace
	current    atomic.Pointer[snapshot]
}

// NewDirectoryUsecase creates a DirectoryUsecase over the given repository.
// The namespace slice fixes the lookup order; nil selects DefaultNamespaces.
func NewDirectoryUsecase(repo ListingRepository, namespaces []entity.Namespace) *DirectoryUsecase {
	if namespaces == nil {
		namespaces = DefaultNamespaces
	}
	return &DirectoryUsecase{repo: repo, namespaces: namespaces}
}

// Refresh reloads every configured code table and swaps in the new
// directory in one step. On any load error the previous directory stays
// in place untouched; a partially built snapshot is never published.
func (u *DirectoryUsecase) Refresh(ctx context.Context) error {
	next := &snapshot{
		tables:   make(map[string][]entity.Listing, len(u.namespaces)),
		origins:  make(map[string]entity.Namespace),
		listings: make(map[string]entity.Listing),
		loadedAt: time.Now(),
	}
	for _, ns := range u.namespaces {
		listings, err := u.repo.ListByTable(ctx, ns.CodesTable)
		if err != nil {
			return fmt.Errorf("load %s: %w", ns.CodesTable, err)
		}
		next.tables[ns.CodesTable] = listings
		for _, l := range listings {
			// first namespace in configured order wins for duplicate codes
			if _, ok := next.origins[l.Code]; !ok {
				next.origins[l.Code] = ns
				next.listings[l.Code] = l
			}
		}
	}
	u.current.Store(next)
	return nil
}

// FindNamespace reports which namespace holds the given code. The lookup
// order is the configured namespace order, so the answer is deterministic
// even when a code appears in several namespaces.
func (u *DirectoryUsecase) FindNamespace(code string) (entity.Namespace, bool) {
	snap := u.current.Load()
	if snap == nil {
		return entity.Namespace{}, false
	}
	ns, ok := snap.origins[code]
	return ns, ok
}

// FindListing returns the directory entry for the given code, resolved
// with the same first-namespace-wins rule as FindNamespace.
func (u *DirectoryUsecase) FindListing(code string) (entity.Listing, bool) {
	snap := u.current.Load()
	if snap == nil {
		return entity.Listing{}, false
	}
	l, ok := snap.listings[code]
	return l, ok
}

// NamespaceByName resolves a market_type value to its namespace.
func (u *DirectoryUsecase) NamespaceByName(name string) (entity.Namespace, bool) {
	for _, ns := range u.namespaces {
		if ns.Name == name {
			return ns, true
		}
	}
	return entity.Namespace{}, false
}

// Tables returns the directory content keyed by code table name, or
// ErrNotLoaded when no refresh has succeeded since process start.
func (u *DirectoryUsecase) Tables() (map[string][]entity.Listing, error) {
	snap := u.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap.tables, nil
}

// LoadedAt reports when the current directory was built.
func (u *DirectoryUsecase) LoadedAt() (time.Time, bool) {
	snap := u.current.Load()
	if snap == nil {
		return time.Time{}, false
	}
	return snap.loadedAt, true
}
