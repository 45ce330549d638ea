// Package names generates readable "adjective-noun" names for cloud
// resources that scenarios create, such as servers, volumes and networks.
//
// Names are lowercase ASCII words joined by a hyphen, which every common
// cloud CLI accepts as a resource name. Scenarios receive one as the
// {{ .name }} variable, so leaked resources are easy to spot in listings
// and two scenarios running in parallel never fight over the same name.
//
// Examples: "brisk-falcon", "amber-harbor", "quiet-summit"
package names

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var adjectives = []string{
	"amber", "azure", "bold", "brave", "brisk", "bright", "calm", "clever",
	"cobalt", "crisp", "eager", "early", "fancy", "fierce", "gentle", "golden",
	"grand", "happy", "hidden", "jolly", "keen", "lively", "lucky", "mellow",
	"misty", "noble", "polar", "proud", "quick", "quiet", "rapid", "rustic",
	"sharp", "silent", "silver", "sleek", "snowy", "solid", "steady", "stormy",
	"sunny", "swift", "tidy", "vivid", "warm", "wild", "wise", "zesty",
}

var nouns = []string{
	"anchor", "badger", "beacon", "birch", "breeze", "canyon", "cedar", "comet",
	"coral", "delta", "ember", "falcon", "fern", "fjord", "gecko", "glacier",
	"harbor", "heron", "island", "jaguar", "lagoon", "lantern", "maple", "meadow",
	"otter", "panda", "pebble", "pine", "quartz", "raven", "reef", "ridge",
	"river", "robin", "sparrow", "spruce", "summit", "thistle", "tiger", "trail",
	"tundra", "valley", "walrus", "willow", "wren", "yak", "zebra", "zephyr",
}

// Generate returns a random "adjective-noun" name.
func Generate() string {
	adjective := adjectives[randomIndex(len(adjectives))]
	noun := nouns[randomIndex(len(nouns))]
	return fmt.Sprintf("%s-%s", adjective, noun)
}

// randomIndex returns a uniform index in [0, max) from crypto/rand, or 0 if
// the random source fails.
func randomIndex(max int) int {
	if max <= 0 {
		return 0
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0
	}

	return int(n.Int64())
}

// GenerateMany returns count names, distinct from each other as long as
// count stays well below the number of combinations. Each slot retries up
// to 100 times before accepting a duplicate.
func GenerateMany(count int) []string {
	if count <= 0 {
		return []string{}
	}

	names := make([]string, count)
	used := make(map[string]bool)

	for i := 0; i < count; i++ {
		var name string
		for attempts := 0; ; attempts++ {
			name = Generate()
			if !used[name] || attempts >= 100 {
				break
			}
		}

		used[name] = true
		names[i] = name
	}

	return names
}
