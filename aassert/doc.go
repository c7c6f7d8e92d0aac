// Package aassert provides assertions for use with the normal Go testing system,
// that go beyond what testify is offering.
// It follows the design decisions of testify/assert as close as possible.
//
// # Example
//
//	func TestUserPayload(t *testing.T) {
//		aassert.SameJSONFields(t, domain.NewUser{}, web.UserPayload{})
//	}
package aassert
