package tasks

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityDanger:
		return true
	default:
		return false
	}
}

// Notifier receives user-visible outcome messages. Calls are fire-and-forget;
// each message supersedes the previously displayed one.
type Notifier interface {
	Notify(message string, severity Severity)
}

type NoopNotifier struct{}

func (NoopNotifier) Notify(string, Severity) {}

// ConfirmFunc surfaces a blocking yes/no decision to the user. It is the
// injected collaborator behind destructive bulk operations.
type ConfirmFunc func(message string) bool
