package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// keyVersion is bumped whenever rendering output changes for the same
// input, so old artifacts stop matching.
const keyVersion = 1

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey returns the cache key of a rendered axis. spec must be
// JSON-serializable; two specs that serialize identically share a key.
func ArtifactKey(spec any, width, height int, format string) string {
	return hashKey("artifact", keyVersion, spec, width, height, format)
}
