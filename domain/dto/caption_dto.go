package dto

// CaptionInput is the optional partial metadata a user already typed.
type CaptionInput struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Hashtags    []string `json:"hashtags,omitempty"`
}

// CaptionSuggestion is a generated (or fallback) set of video metadata.
type CaptionSuggestion struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Hashtags    []string `json:"hashtags"`
}
