// Package cache stores rendered analysis responses on disk with a TTL.
//
// Comparisons and recommendations are deterministic for a given catalog and
// request, so the CLI can reuse a previous answer instead of rescoring the
// whole catalog. Keys are SHA-256 digests of the operation, the catalog
// identity and the normalized request. Entries live as JSON files under
// $CARBONWISE_HOME/cache.
package cache
