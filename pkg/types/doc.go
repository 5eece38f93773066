// Package types defines the Recipe entity, the Slot storage interface,
// backend configuration, and the standard error types for Recipe Box.
package types
