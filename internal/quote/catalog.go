// Package quote provides the simulated remote quote source.
package quote

import "time"

// DefaultDelay is how long Retrieve waits before answering, standing in for a
// remote round trip.
const DefaultDelay = time.Second

// Catalog is an ordered, fixed set of candidate quotes.
type Catalog []string

var defaultCatalog = Catalog{
	"Change will not come if we wait for some other person or some other time. We are the ones we've been waiting for. We are the change that we seek.",
	"Three things cannot be long hidden: the sun, the moon, and the truth.",
	"Do not dwell in the past, do not dream of the future, concentrate the mind on the present moment.",
	"If you're walking down the right path and you're willing to keep walking, eventually you'll make progress.",
	"Better than a thousand hollow words, is one word that brings peace.",
}

// DefaultCatalog returns a copy of the built-in five-quote catalog.
func DefaultCatalog() Catalog {
	c := make(Catalog, len(defaultCatalog))
	copy(c, defaultCatalog)
	return c
}

// Contains reports whether q is one of the catalog entries.
func (c Catalog) Contains(q string) bool {
	for _, entry := range c {
		if entry == q {
			return true
		}
	}
	return false
}
