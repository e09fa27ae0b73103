// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current instant. Period resolution is anchored to
// "now", so use cases take a Clock instead of calling time.Now directly and
// tests pin arbitrary instants.
type Clock interface {
	Now() time.Time
}
