package domain

// Field names a stop request must carry.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldUniversity = "university"
)

// RequiredStopFields lists the required stop request fields in the order
// they are reported when missing.
func RequiredStopFields() []string {
	return []string{FieldName, FieldEmail, FieldUniversity}
}

// StopRequest is a loosely typed "request a stop" submission. Optional
// fields such as cityState, window and message are carried but never checked.
type StopRequest map[string]any
