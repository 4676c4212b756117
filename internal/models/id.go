package models

import (
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/lifelog-cli/internal/constants"
)

// ID is the single opaque identifier type used for every entity. A record
// holds either a client-issued temporary id (local prefix, never seen by the
// remote store) or a canonical id assigned by the remote store. A record
// transitions temporary -> canonical at most once and never the reverse.
type ID string

// NewLocalID issues a temporary id. The prefix keeps the namespace disjoint
// from canonical ids so reconciliation can detect unacknowledged records.
func NewLocalID() ID {
	return ID(constants.LocalIDPrefix + uuid.New().String())
}

// IsLocal reports whether the id is a temporary client-issued id
func (id ID) IsLocal() bool {
	return strings.HasPrefix(string(id), constants.LocalIDPrefix)
}

func (id ID) String() string {
	return string(id)
}

// NormalizeID coalesces whatever identifier representation a record carried
// (canonical "_id", plain "id", or nothing at all) into one opaque ID.
// Records that arrive with no usable identifier get a fresh temporary id so
// downstream code never branches on identifier shape.
func NormalizeID(candidates ...string) ID {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return ID(c)
		}
	}
	return NewLocalID()
}
