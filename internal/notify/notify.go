package notify

import (
	"github.com/sirupsen/logrus"
)

// Severity classifies a notification for the UI collaborator that renders it.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notifier is the user-facing notification channel. The core reports
// outcomes (added to cart, order placed, validation failure, persistence
// error) through it and never renders anything itself.
type Notifier interface {
	Notify(title, description string, severity Severity)
}

// LogNotifier is the default Notifier: it writes every notification to the
// application log. The HTTP responses carry the same message for the
// frontend's toast layer.
type LogNotifier struct {
	Log *logrus.Logger
}

func NewLogNotifier(log *logrus.Logger) *LogNotifier {
	return &LogNotifier{Log: log}
}

func (n *LogNotifier) Notify(title, description string, severity Severity) {
	entry := n.Log.WithFields(logrus.Fields{
		"title":    title,
		"severity": severity,
	})

	if severity == SeverityError {
		entry.Warn(description)
		return
	}
	entry.Info(description)
}
