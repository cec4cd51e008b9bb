// Package app provides the application service layer.
//
// Use cases: listing and looking up tour events, exporting an event's
// calendar entry, and acknowledging stop requests. Sits between the HTTP
// handlers and the event directory.
package app
