package model

import (
	"fmt"
	"strings"
)

// Platform identifies a publish destination.
type Platform string

const (
	PlatformTikTok    Platform = "TikTok"
	PlatformInstagram Platform = "Instagram Reels"
	PlatformYouTube   Platform = "YouTube Shorts"
	PlatformFacebook  Platform = "Facebook Reels"
	PlatformX         Platform = "X"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformPinterest Platform = "Pinterest"
	PlatformReddit    Platform = "Reddit"
)

// AllPlatforms returns the supported platforms in display order.
func AllPlatforms() []Platform {
	return []Platform{
		PlatformTikTok,
		PlatformInstagram,
		PlatformYouTube,
		PlatformFacebook,
		PlatformX,
		PlatformLinkedIn,
		PlatformPinterest,
		PlatformReddit,
	}
}

// ParsePlatform resolves a platform identifier case-insensitively.
func ParsePlatform(s string) (Platform, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, p := range AllPlatforms() {
		if strings.ToLower(string(p)) == needle {
			return p, nil
		}
	}
	return "", fmt.Errorf("unsupported platform: %s", s)
}
