package domain

import (
	"strconv"
	"strings"
)

const (
	SessionKeyUsername = "username"
	SessionKeyID       = "id"
)

// undefinedSentinel is what a browser stores when an unset value is written.
const undefinedSentinel = "undefined"

type UserID int64

func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

type Identity struct {
	Name string
	ID   UserID
}

// IsMissingSessionValue reports whether a raw stored value counts as absent.
func IsMissingSessionValue(value string, ok bool) bool {
	if !ok {
		return true
	}

	trimmed := strings.TrimSpace(value)
	return trimmed == "" || trimmed == undefinedSentinel
}

func ParseUserID(raw string) (UserID, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}

	return UserID(id), nil
}
