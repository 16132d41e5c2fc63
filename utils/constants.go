// File: utils/constants.go
package utils

import "time"

// WizardSessionPrefix is the prefix used for Redis wizard session keys.
const WizardSessionPrefix = "wizard:"

// CatalogCachePrefix is the prefix used for cached catalog lookups.
const CatalogCachePrefix = "catalog:"

// CatalogCacheTTL is the time-to-live for cached catalog lookups.
const CatalogCacheTTL = 10 * time.Minute
