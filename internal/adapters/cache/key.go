package cache

import (
	"fmt"
	"water-distribution-service/internal/ports"
)

// keyString renders a summary key as a stable cache key.
func keyString(k ports.SummaryKey) string {
	return fmt.Sprintf("summary:%s:%d:%s", k.Level, k.ScenarioPct, k.Tanker)
}

// namespacedKey prefixes a key with the dataset version it was computed from.
func namespacedKey(ns string, k ports.SummaryKey) string {
	if ns == "" {
		return keyString(k)
	}
	return ns + ":" + keyString(k)
}
