// Package conv writes converted date values into typed destinations.
// It supports optional pointers, slices, map to struct conversion with per field
// `format` tag patterns, and custom conversion functions registered per source/destination type.
package conv
