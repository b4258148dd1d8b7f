package journal

// Record is a single severity-tagged message. The zero value is not a valid
// record; records are obtained from Create or Store.Add.
type Record struct {
	severity Severity
	message  string
}

// Create builds a record for the given type label. The message is kept as-is,
// including an empty one. The boolean is false when the label is not one of
// the recognized types, in which case the returned record must not be used.
func Create(typeLabel, message string) (Record, bool) {
	severity, ok := ParseSeverity(typeLabel)
	if !ok {
		return Record{}, false
	}
	return Record{severity: severity, message: message}, true
}

// Severity returns the record's severity.
func (r Record) Severity() Severity {
	return r.severity
}

// Message returns the message exactly as it was given to Create.
func (r Record) Message() string {
	return r.message
}

// Rendered returns the display form, e.g. "[INFO]: hello".
func (r Record) Rendered() string {
	return "[" + r.severity.Tag() + "]: " + r.message
}

func (r Record) String() string {
	return r.Rendered()
}
