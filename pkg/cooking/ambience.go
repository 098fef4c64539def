package cooking

import "strings"

// Ambience is the background track for a mood.
type Ambience struct {
	Mood     string `json:"mood"`
	AudioURL string `json:"audioUrl"`
}

const fallbackMood = "Relaxed"

var moodTracks = map[string]string{
	"Relaxed":         "https://example.com/relaxing-jazz.mp3",
	"Energetic":       "https://example.com/upbeat-funk.mp3",
	"Focused":         "https://example.com/ambient-flow.mp3",
	"Creative":        "https://example.com/inspiring-melody.mp3",
	"Celebratory":     "https://example.com/party-vibes.mp3",
	"Romantic":        "https://example.com/smooth-jazz.mp3",
	"Family-friendly": "https://example.com/happy-tunes.mp3",
	"Adventurous":     "https://example.com/world-beats.mp3",
}

// AmbienceFor returns the track for mood, matched case-insensitively.
// Unknown moods get the Relaxed track.
func AmbienceFor(mood string) Ambience {
	for m, url := range moodTracks {
		if strings.EqualFold(m, strings.TrimSpace(mood)) {
			return Ambience{Mood: m, AudioURL: url}
		}
	}
	return Ambience{Mood: fallbackMood, AudioURL: moodTracks[fallbackMood]}
}
