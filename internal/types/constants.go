package types

import (
	"os"
	"strings"
)

// ContextUserKey is where AuthMiddleware stores the resolved user.
const ContextUserKey = "currentUser"

// AllowedOrigins is the CORS allow-list. ALLOWED_ORIGINS holds a comma
// separated list and replaces the development defaults; CLIENT_URL appends
// one extra origin on top of either.
var AllowedOrigins = corsOrigins()

func corsOrigins() []string {
	var origins []string

	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://localhost:8080",
		}
	}

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	return origins
}
