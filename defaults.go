package cacheagent

// DefaultCoreAssets is the static shell asset list precached even when
// manifest discovery fails.
var DefaultCoreAssets = []string{
	"/",
	"/index.html",
	"/manifest.json",
	"/favicon.ico",
	"/logo192.svg",
	"/logo512.svg",
}

const (
	defaultManifestURL = "/asset-manifest.json"
	defaultFallbackURL = "/index.html"
)

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
