package redis

import (
	"fmt"

	"github.com/hexforge/catan-go/internal/model"
)

// Key prefix for all application data
const keyPrefix = "catan"

// userKey returns the Redis key for a User document
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%d", keyPrefix, id)
}

// usernameIndexKey returns the Redis key claiming a username
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// emailIndexKey returns the Redis key claiming an email address
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// gameKey returns the Redis key for a Game document, players and state
// included
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%d", keyPrefix, id)
}

// usersZSetKey returns the Redis key for the sorted set of all user IDs
func usersZSetKey() string {
	return fmt.Sprintf("%s:users", keyPrefix)
}

// gamesZSetKey returns the Redis key for the sorted set of all game IDs
func gamesZSetKey() string {
	return fmt.Sprintf("%s:games", keyPrefix)
}

// gamesByStatusKey returns the Redis key for the sorted set of game IDs in
// one status
func gamesByStatusKey(status model.GameStatus) string {
	return fmt.Sprintf("%s:games:status:%s", keyPrefix, status)
}

// Sequence keys for ID allocation

func userSeqKey() string {
	return fmt.Sprintf("%s:seq:user", keyPrefix)
}

func gameSeqKey() string {
	return fmt.Sprintf("%s:seq:game", keyPrefix)
}

func playerSeqKey() string {
	return fmt.Sprintf("%s:seq:game_player", keyPrefix)
}
