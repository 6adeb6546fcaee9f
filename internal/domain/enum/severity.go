package enum

// Severity classifies a transient till notice.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warn"
	SeverityError   Severity = "error"
)

func (s Severity) String() string {
	return string(s)
}
