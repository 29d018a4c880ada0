// Package cache keeps generated feed documents between requests.
// Entries expire by TTL and can be dropped early by tag, e.g. when a post changes.
package cache

// Stats reports cache effectiveness
type Stats struct {
	Backend string `json:"backend"`
	Hits    int64  `json:"hits"`
	Misses  int64  `json:"misses"`
	Keys    int64  `json:"keys"`
}
