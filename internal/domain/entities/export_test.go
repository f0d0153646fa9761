package entities

// ResolveToken exports resolveToken for testing.
var ResolveToken = resolveToken //nolint:gochecknoglobals // test export
