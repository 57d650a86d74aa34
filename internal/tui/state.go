package tui

import (
	"strconv"

	"github.com/javiermolinar/animath/internal/generate"
	"github.com/javiermolinar/animath/internal/player"
)

// AudioKey is the element key of the narration audio.
const AudioKey = "audio"

// VideoKey returns the element key of the video at index (0-based).
func VideoKey(index int) string {
	return "video-" + strconv.Itoa(index+1)
}

// ErrorMessage is the only failure text ever shown to the user.
const ErrorMessage = "An error occurred while generating the animation. Please try again."

// State is the view-local state of one generator view. It lives as long as
// the program and is never persisted.
type State struct {
	RequestText  string
	VideoURLs    []string
	AudioURL     string
	IsLoading    bool
	ErrorMessage string

	// RequestID identifies the latest submission. Completions for any
	// other ID are stale and ignored.
	RequestID string
}

// SetText replaces the request text with the full edited value.
func (s *State) SetText(value string) {
	s.RequestText = value
}

// BeginSubmission clears the previous outcome and marks a request in flight.
func (s *State) BeginSubmission(requestID string) {
	s.ErrorMessage = ""
	s.VideoURLs = nil
	s.AudioURL = ""
	s.IsLoading = true
	s.RequestID = requestID
}

// Succeed stores the media of a completed request. It reports false and
// changes nothing when requestID is not the latest submission.
func (s *State) Succeed(requestID string, result *generate.Result) bool {
	if requestID != s.RequestID {
		return false
	}
	s.VideoURLs = result.VideoURLs
	s.AudioURL = result.AudioURL
	s.ErrorMessage = ""
	s.IsLoading = false
	return true
}

// Fail records a failed request. It reports false and changes nothing when
// requestID is not the latest submission.
func (s *State) Fail(requestID string) bool {
	if requestID != s.RequestID {
		return false
	}
	s.VideoURLs = nil
	s.AudioURL = ""
	s.ErrorMessage = ErrorMessage
	s.IsLoading = false
	return true
}

// MediaURLs returns every playable URL in display order: videos, then audio.
func (s State) MediaURLs() []string {
	items := s.MediaElements()
	urls := make([]string, len(items))
	for i, item := range items {
		urls[i] = item.URL
	}
	return urls
}

// MediaElements returns every playable element in display order. Keys
// follow list position, so a URL listed twice yields two elements.
func (s State) MediaElements() []player.Item {
	items := make([]player.Item, 0, len(s.VideoURLs)+1)
	for i, url := range s.VideoURLs {
		items = append(items, player.Item{Key: VideoKey(i), URL: url})
	}
	if s.AudioURL != "" {
		items = append(items, player.Item{Key: AudioKey, URL: s.AudioURL})
	}
	return items
}

// element returns the element with key, if present.
func (s State) element(key string) (player.Item, bool) {
	for _, item := range s.MediaElements() {
		if item.Key == key {
			return item, true
		}
	}
	return player.Item{}, false
}
