// Package emoji picks a favicon emoji for freshly scaffolded projects.
package emoji

import "math/rand"

// Catalog is the fixed, ordered set of candidate favicon emoji.
var Catalog = []string{
	"🚀", "✨", "🔥", "🌈", "⚡", "🎨", "🌊", "🍀",
	"🛠️", "🎯", "🧪", "🦄", "🌙", "☀️", "🍉", "🎸",
}

// Pick returns one element of catalog chosen uniformly with src. Selection
// is deterministic under a seeded source, which keeps tests stable.
func Pick(src rand.Source, catalog []string) string {
	if len(catalog) == 0 {
		return ""
	}
	r := rand.New(src)
	return catalog[r.Intn(len(catalog))]
}

// Random returns a catalog emoji using the given seed.
func Random(seed int64) string {
	return Pick(rand.NewSource(seed), Catalog)
}
