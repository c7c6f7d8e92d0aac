// Package ctx holds the key type of all values restapi stores in a context.Context.
package ctx

// CTXKey is the type of all context keys of restapi, so they never collide with keys of other packages.
type CTXKey string
