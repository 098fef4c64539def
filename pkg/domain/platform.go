package domain

import "strings"

// PlatformKind enumerates the music platforms a user can connect.
type PlatformKind int

const (
	PlatformOther PlatformKind = iota
	PlatformSpotify
	PlatformYouTube
)

// Platform identifies a music platform. Name is only meaningful for
// PlatformOther, where it carries the user-facing platform name.
type Platform struct {
	Kind PlatformKind
	Name string
}

var (
	Spotify = Platform{Kind: PlatformSpotify}
	YouTube = Platform{Kind: PlatformYouTube}
)

// Other returns a platform variant without first-class support.
func Other(name string) Platform {
	return Platform{Kind: PlatformOther, Name: name}
}

// ParsePlatform maps a platform name to its variant, case-insensitively.
// Unrecognized names become Other(name).
func ParsePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spotify":
		return Spotify
	case "youtube":
		return YouTube
	}
	return Other(strings.TrimSpace(s))
}

// String returns the platform slug used in URLs and storage keys.
func (p Platform) String() string {
	switch p.Kind {
	case PlatformSpotify:
		return "spotify"
	case PlatformYouTube:
		return "youtube"
	}
	return strings.ToLower(p.Name)
}

// Supported reports whether the platform has first-class integration.
func (p Platform) Supported() bool {
	return p.Kind != PlatformOther
}
