package diag

// Severity ranks a diagnostic. Lexical, syntax and type errors fail a
// check; cache trouble and shadowed declarations only warn.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
