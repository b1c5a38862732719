/* bot.go
 * Contains logic used for creating the bot. Requires a discord bot token and APIPtr, both of which are passed in from
 * main.go. Each user's commands are rate limited separately
 */

package bot

import (
	"fmt"
	"strings"
	"sync"

	"bracket-bot/api/api"

	"golang.org/x/time/rate"
)

type Bot struct {
	BotToken string
	APIPtr   *api.API

	limitMu   sync.Mutex
	limiters  map[string]*rate.Limiter
	rateLimit rate.Limit
	rateBurst int
}

// NewBot creates a bot that allows each user rateLimit commands per second, with bursts of up to rateBurst
// Preconditions: botToken is non-empty, rateLimit and rateBurst are positive
// Postconditions: Returns the bot or an error describing the invalid argument
func NewBot(botToken string, apiPtr *api.API, rateLimit float64, rateBurst int) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}
	if rateLimit <= 0 || rateBurst <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %v with burst %d", rateLimit, rateBurst)
	}

	return &Bot{
		BotToken:  botToken,
		APIPtr:    apiPtr,
		limiters:  make(map[string]*rate.Limiter),
		rateLimit: rate.Limit(rateLimit),
		rateBurst: rateBurst,
	}, nil
}

// allow reports whether userID may run another command now
func (b *Bot) allow(userID string) bool {
	b.limitMu.Lock()
	defer b.limitMu.Unlock()
	if b.limiters == nil {
		b.limiters = make(map[string]*rate.Limiter)
	}
	limiter, ok := b.limiters[userID]
	if !ok {
		limit, burst := b.rateLimit, b.rateBurst
		if limit <= 0 || burst <= 0 {
			limit, burst = rate.Inf, 1
		}
		limiter = rate.NewLimiter(limit, burst)
		b.limiters[userID] = limiter
	}
	return limiter.Allow()
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}
