// Package domain defines the core domain types of the tour site.
//
// Events, their status lifecycle labels, the ephemeral stop request and the
// filter used by the listing endpoint. No I/O happens here.
package domain
