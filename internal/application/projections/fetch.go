// Package projections assembles read models for pages from the league API,
// reading through the list caches so a page rendered after a mutation shows
// the locally patched list without a refetch.
package projections

import (
	"context"

	"leaguedesk/internal/application/listcache"
)

// readThrough returns the cached rows for coll, fetching and filling the
// cache when it is empty or when refresh is set.
// POST: coll holds the returned rows
func readThrough[T listcache.Entry](ctx context.Context, coll *listcache.Collection[T], refresh bool, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if !refresh && !coll.Empty() {
		return coll.Items(), nil
	}
	rows, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	coll.Replace(rows)
	return coll.Items(), nil
}
