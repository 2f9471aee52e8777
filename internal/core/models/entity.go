package models

import "strconv"

// EntityID is an opaque entity handle. Zero is never allocated.
type EntityID uint64

func (id EntityID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Kind names a component schema. Many entities share a kind, each with its own table.
type Kind string

func (k Kind) String() string {
	return string(k)
}
