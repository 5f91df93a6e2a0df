package types

import (
	"regexp"
	"sync"

	"github.com/google/uuid"
)

// IDLength is the length of every item id.
const IDLength = 8

const (
	idLetters       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	idAlphanumerics = idLetters + "0123456789"
)

var idPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{7}$`)

// entropyOffsets picks the bytes of a version 4 UUID that carry no
// version or variant bits.
var entropyOffsets = [IDLength]int{0, 1, 2, 3, 4, 5, 7, 9}

// registry holds every id minted or adopted by this process. Minting
// retries until it draws an id that is not in the registry.
var registry = struct {
	sync.Mutex
	seen map[string]struct{}
}{seen: make(map[string]struct{})}

// ValidID reports whether id has the shape of an item id: one letter
// followed by seven letters or digits.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// newID mints a random id that no other item in this process has used.
func newID() string {
	registry.Lock()
	defer registry.Unlock()

	for {
		id := randomID()
		if _, taken := registry.seen[id]; taken {
			continue
		}
		registry.seen[id] = struct{}{}
		return id
	}
}

// reserveID records an id adopted from persisted data so that later
// mints never hand it out again.
func reserveID(id string) {
	registry.Lock()
	registry.seen[id] = struct{}{}
	registry.Unlock()
}

func randomID() string {
	u := uuid.New()

	var b [IDLength]byte
	b[0] = idLetters[int(u[entropyOffsets[0]])%len(idLetters)]
	for i := 1; i < IDLength; i++ {
		b[i] = idAlphanumerics[int(u[entropyOffsets[i]])%len(idAlphanumerics)]
	}
	return string(b[:])
}
