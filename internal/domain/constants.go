package domain

// ==== Protocol Limits ====

const (
	// MaxDisplayNameLength is the maximum display name length in runes
	MaxDisplayNameLength = 40

	// MaxMessageTextLength is the maximum chat text length in runes
	MaxMessageTextLength = 1000

	// AnonymousName is the fallback for empty names and unregistered senders
	AnonymousName = "Anonymous"
)

// ==== WebSocket Constants ====

// MaxFrameSize is the maximum allowed WebSocket frame size in bytes
const MaxFrameSize = 4096

// ==== Rate Limit Constants ====

const (
	// DefaultRateLimitAPI is the default rate limit for API endpoints (requests/sec)
	DefaultRateLimitAPI = 10

	// DefaultRateLimitWS is the default rate limit for WebSocket upgrades (req/sec)
	DefaultRateLimitWS = 5
)
