package model

import (
	"errors"
	"strings"
)

// ErrUnknownPlatform is returned when a slug does not name a supported ad platform.
var ErrUnknownPlatform = errors.New("unknown platform")

// Platform identifies an external advertising platform.
type Platform string

const (
	PlatformMeta   Platform = "meta"
	PlatformTikTok Platform = "tiktok"
	PlatformGoogle Platform = "google"
)

var displayNames = map[Platform]string{
	PlatformMeta:   "Meta",
	PlatformTikTok: "TikTok",
	PlatformGoogle: "Google Ads",
}

// Platforms returns the supported platforms in route registration order.
func Platforms() []Platform {
	return []Platform{PlatformMeta, PlatformTikTok, PlatformGoogle}
}

// ParsePlatform resolves a URL slug (case-insensitive) to a Platform.
func ParsePlatform(slug string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(slug)))
	if !p.Valid() {
		return "", ErrUnknownPlatform
	}
	return p, nil
}

// Valid reports whether p is a supported platform.
func (p Platform) Valid() bool {
	_, ok := displayNames[p]
	return ok
}

// Slug is the path segment used under /api.
func (p Platform) Slug() string {
	return string(p)
}

// DisplayName is the human-readable platform name, e.g. "Google Ads".
func (p Platform) DisplayName() string {
	return displayNames[p]
}
