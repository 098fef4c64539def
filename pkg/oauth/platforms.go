package oauth

import (
	"github.com/mughesh03/aromatone/pkg/domain"
)

// Descriptor is the lookup-table entry for a platform: display metadata plus
// the endpoints used by the code flow. Platforms without OAuth support have
// empty endpoint fields.
type Descriptor struct {
	Platform      domain.Platform `json:"-"`
	Slug          string          `json:"id"`
	Name          string          `json:"name"`
	Icon          string          `json:"icon"`
	Color         string          `json:"color"`
	ConnectText   string          `json:"connectText"`
	ConnectedText string          `json:"connectedText"`

	AuthURL      string   `json:"-"`
	TokenURL     string   `json:"-"`
	Scopes       []string `json:"-"`
	ProfileURL   string   `json:"-"`
	PlaylistsURL string   `json:"-"`
}

// SupportsOAuth reports whether the descriptor carries authorization endpoints.
func (d Descriptor) SupportsOAuth() bool {
	return d.AuthURL != "" && d.TokenURL != ""
}

var spotify = Descriptor{
	Platform:      domain.Spotify,
	Slug:          "spotify",
	Name:          "Spotify",
	Icon:          "🎵",
	Color:         "#1DB954",
	ConnectText:   "Connect to Spotify",
	ConnectedText: "Connected to Spotify",
	AuthURL:       "https://accounts.spotify.com/authorize",
	TokenURL:      "https://accounts.spotify.com/api/token",
	Scopes: []string{
		"user-read-private",
		"user-read-email",
		"playlist-read-private",
		"playlist-read-collaborative",
		"user-library-read",
	},
	ProfileURL:   "https://api.spotify.com/v1/me",
	PlaylistsURL: "https://api.spotify.com/v1/me/playlists",
}

var youtube = Descriptor{
	Platform:      domain.YouTube,
	Slug:          "youtube",
	Name:          "YouTube",
	Icon:          "📺",
	Color:         "#FF0000",
	ConnectText:   "Connect to YouTube",
	ConnectedText: "Connected to YouTube",
	AuthURL:       "https://accounts.google.com/o/oauth2/v2/auth",
	TokenURL:      "https://oauth2.googleapis.com/token",
	Scopes: []string{
		"https://www.googleapis.com/auth/youtube.readonly",
		"https://www.googleapis.com/auth/youtube.force-ssl",
	},
	ProfileURL:   "https://www.googleapis.com/youtube/v3/channels?part=snippet&mine=true",
	PlaylistsURL: "https://www.googleapis.com/youtube/v3/playlists?part=snippet&mine=true",
}

// Describe returns the descriptor for a platform. Platforms without
// first-class support get generic metadata built from their name.
func Describe(p domain.Platform) Descriptor {
	switch p.Kind {
	case domain.PlatformSpotify:
		return clone(spotify)
	case domain.PlatformYouTube:
		return clone(youtube)
	}
	return Descriptor{
		Platform:      p,
		Slug:          p.String(),
		Name:          p.Name,
		Icon:          "🔗",
		Color:         "#0071e3",
		ConnectText:   "Connect to " + p.Name,
		ConnectedText: "Connected to " + p.Name,
	}
}

// Platforms lists the descriptors of the supported platforms.
func Platforms() []Descriptor {
	return []Descriptor{clone(spotify), clone(youtube)}
}

func clone(d Descriptor) Descriptor {
	d.Scopes = append([]string(nil), d.Scopes...)
	return d
}
