// Package tour holds the event directory: the ordered, immutable list of
// tour stops built once at startup and shared read-only by every request.
package tour
