package journal

// Severity classifies a record. The set is closed: Info, Warning and Error.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// Severities lists every severity in declaration order.
var Severities = []Severity{Info, Warning, Error}

// Label returns the lower-case type label accepted by ParseSeverity.
func (s Severity) Label() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Tag returns the upper-case tag used when rendering a record.
func (s Severity) Tag() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (s Severity) String() string {
	return s.Tag()
}

// ParseSeverity matches a type label case-sensitively. Only "info", "warning"
// and "error" are recognized.
func ParseSeverity(label string) (Severity, bool) {
	switch label {
	case "info":
		return Info, true
	case "warning":
		return Warning, true
	case "error":
		return Error, true
	}
	return 0, false
}
