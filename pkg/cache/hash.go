package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// hashKey builds "prefix:sha256(json(parts))".
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// TilingKeyOpts are the search options that change a pack result.
type TilingKeyOpts struct {
	Width           int           `json:"width"`
	Length          int           `json:"length"`
	MaxPermutations int           `json:"max_permutations"`
	Timeout         time.Duration `json:"timeout"`
	DistinctShapes  bool          `json:"distinct_shapes"`
	Solutions       int           `json:"solutions"`
}

// TilingKey returns the key of a pack search over sources, given as
// content digests in argument order.
func TilingKey(sources []string, opts TilingKeyOpts) string {
	return hashKey("tiling", sources, opts)
}
