package models

import (
	"strings"

	"github.com/google/uuid"
)

// LocalIDPrefix marks ids minted on the device for entities that have not
// reached the remote store yet. Remote ids are plain UUIDs and never carry it.
const LocalIDPrefix = "local_"

func NewLocalID() string {
	return LocalIDPrefix + uuid.NewString()
}

func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}
