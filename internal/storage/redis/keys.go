package redis

import (
	"fmt"

	"github.com/mcoot/battleship-go2/internal/model"
)

// Key prefix for all match-related data
const keyPrefix = "battleship"

// matchKey returns the Redis key for a match record
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchIndexKey returns the Redis key for the SET of known match IDs
func matchIndexKey() string {
	return fmt.Sprintf("%s:idx:matches", keyPrefix)
}
