package redis

import (
	"fmt"

	"github.com/mcoot/scrabblesolver/internal/model"
)

// Key prefix for all solver data
const keyPrefix = "scrabblesolver"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// dictionaryKey returns the Redis key for a locale's dictionary word set
func dictionaryKey(locale string) string {
	return fmt.Sprintf("%s:dictionary:%s", keyPrefix, locale)
}

// solutionKey returns the Redis key for a cached solution
func solutionKey(fingerprint string) string {
	return fmt.Sprintf("%s:solution:%s", keyPrefix, fingerprint)
}
