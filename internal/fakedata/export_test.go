package fakedata

import "slices"

// IsKnownDomain reports whether d is one of Domains.
func IsKnownDomain(d string) bool {
	return slices.Contains(Domains[:], d)
}
