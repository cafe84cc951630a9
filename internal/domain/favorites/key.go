// internal/domain/favorites/key.go
package favorites

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind distinguishes the two item representations a favorite can point at.
type Kind string

const (
	// KindLocal favorites reference bundled, resource-based catalog items.
	KindLocal Kind = "local"
	// KindRemote favorites reference items from the fetched catalog.
	KindRemote Kind = "remote"
)

// Key identifies one favorited item. The two kinds persist differently:
// local ids as plain integers, remote ids as "remote:<id>" strings.
type Key struct {
	Kind Kind `json:"kind"`
	ID   int  `json:"id"`
}

// Local builds a key for a bundled catalog item.
func Local(id int) Key { return Key{Kind: KindLocal, ID: id} }

// Remote builds a key for a remotely fetched catalog item.
func Remote(id int) Key { return Key{Kind: KindRemote, ID: id} }

// String renders the persisted form of the key.
func (k Key) String() string {
	if k.Kind == KindRemote {
		return "remote:" + strconv.Itoa(k.ID)
	}
	return strconv.Itoa(k.ID)
}

// ParseKey decodes a persisted favorite key.
func ParseKey(raw string) (Key, error) {
	if rest, ok := strings.CutPrefix(raw, "remote:"); ok {
		id, err := strconv.Atoi(rest)
		if err != nil {
			return Key{}, fmt.Errorf("invalid remote favorite key %q", raw)
		}
		return Remote(id), nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return Key{}, fmt.Errorf("invalid favorite key %q", raw)
	}
	return Local(id), nil
}
