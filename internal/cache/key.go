// Package cache implements the two-tier read path over the durable store:
// a whole-table QaG snapshot plus per-query derived list entries, both held
// in a pluggable backing store (Redis or in-process).
package cache

import (
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the query shape a cache entry memoizes.
type Kind string

const (
	KindQagTable  Kind = "qag_table"
	KindPopular   Kind = "popular"
	KindLatest    Kind = "latest"
	KindSupported Kind = "supported"
)

func (k Kind) String() string { return string(k) }

// Key identifies one cache entry: the query kind plus its optional
// thematique and user dimensions. A typed key rules out the collisions
// that concatenated strings invite.
type Key struct {
	Kind         Kind
	ThematiqueID *uuid.UUID
	UserID       *uuid.UUID
}

// TableKey is the key of the whole-table QaG snapshot.
func TableKey() Key {
	return Key{Kind: KindQagTable}
}

// PopularKey keys the popular list for a thematique (nil = all).
func PopularKey(thematiqueID *uuid.UUID) Key {
	return Key{Kind: KindPopular, ThematiqueID: thematiqueID}
}

// LatestKey keys the latest list for a thematique (nil = all).
func LatestKey(thematiqueID *uuid.UUID) Key {
	return Key{Kind: KindLatest, ThematiqueID: thematiqueID}
}

// SupportedKey keys a user's supported list for a thematique (nil = all).
func SupportedKey(userID uuid.UUID, thematiqueID *uuid.UUID) Key {
	return Key{Kind: KindSupported, ThematiqueID: thematiqueID, UserID: &userID}
}

// String renders the storage key. Absent dimensions render as "-" so that
// every component occupies a fixed position.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(string(k.Kind))
	b.WriteByte(':')
	if k.ThematiqueID != nil {
		b.WriteString(k.ThematiqueID.String())
	} else {
		b.WriteByte('-')
	}
	b.WriteByte(':')
	if k.UserID != nil {
		b.WriteString(k.UserID.String())
	} else {
		b.WriteByte('-')
	}
	return b.String()
}
