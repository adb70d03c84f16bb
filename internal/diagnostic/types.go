package diagnostic

// Notices collects informational messages gathered while enumerating the
// style spec. Degraded input (missing support declarations, filtered layers
// and attributes) is never an error, but the enumeration records why things
// were dropped so a verbose run can explain the output.
type Notices struct {
	Warnings []Notice
	Infos    []Notice
}

// Notice is a single enumeration message.
type Notice struct {
	// Severity of the notice.
	Severity Severity
	// Message is the human-readable description.
	Message string
	// Layer identifies which layer type this relates to (if any).
	Layer string
	// Attribute identifies which attribute this relates to (if any).
	Attribute string
}

// Severity represents the severity level of a notice.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// AddInfo records an info notice.
func (n *Notices) AddInfo(message, layer, attribute string) {
	n.Infos = append(n.Infos, Notice{
		Severity:  SeverityInfo,
		Message:   message,
		Layer:     layer,
		Attribute: attribute,
	})
}

// AddWarning records a warning notice.
func (n *Notices) AddWarning(message, layer, attribute string) {
	n.Warnings = append(n.Warnings, Notice{
		Severity:  SeverityWarning,
		Message:   message,
		Layer:     layer,
		Attribute: attribute,
	})
}

// All returns warnings followed by infos.
func (n *Notices) All() []Notice {
	out := make([]Notice, 0, len(n.Warnings)+len(n.Infos))
	out = append(out, n.Warnings...)
	out = append(out, n.Infos...)

	return out
}

// String returns a formatted notice string.
func (n Notice) String() string {
	var prefix string
	if n.Layer != "" {
		prefix = "[" + n.Layer + "]"
	}

	if n.Attribute != "" {
		prefix += " " + n.Attribute
	}

	if prefix != "" {
		return prefix + ": " + n.Message
	}

	return n.Message
}
