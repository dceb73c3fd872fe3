package util

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// CalculateChecksum calculates the SHA256 checksum of the JSON encoding of
// any value. Dataset versions are derived from the merged collections this
// way, so identical data always yields the same version string.
func CalculateChecksum(value any) (string, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode value for checksum")
	}

	sum := sha256.Sum256(encoded)

	return fmt.Sprintf("%x", sum), nil
}
