// File: utils/constants.go
package utils

import "time"

// AuthSessionPrefix is the unified prefix for portal auth session keys.
const AuthSessionPrefix = "auth:"

// AuthSessionTTL is the time-to-live for portal auth sessions.
const AuthSessionTTL = 24 * time.Hour

// CatalogCachePrefix is the prefix for cached catalog entries.
const CatalogCachePrefix = "catalog:"

// CatalogCacheTTL is the time-to-live for cached catalog entries.
const CatalogCacheTTL = 30 * time.Minute
