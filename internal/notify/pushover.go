package notify

import (
	"fmt"
	"strings"

	"github.com/gregdel/pushover"
	"github.com/sirupsen/logrus"
)

const (
	PriorityNormal = 0
	PriorityHigh   = 1
)

type Notifier struct {
	app       *pushover.Pushover
	recipient *pushover.Recipient
	logger    *logrus.Logger
}

func NewNotifier(token, userKey string, logger *logrus.Logger) *Notifier {
	return &Notifier{
		app:       pushover.New(token),
		recipient: pushover.NewRecipient(userKey),
		logger:    logger,
	}
}

func (n *Notifier) Send(title, message string) error {
	return n.SendWithPriority(title, message, PriorityNormal)
}

func (n *Notifier) SendWithPriority(title, message string, priority int) error {
	msg := pushover.NewMessageWithTitle(message, title)
	msg.Priority = priority

	resp, err := n.app.SendMessage(msg, n.recipient)
	if err != nil {
		return fmt.Errorf("sending pushover notification: %w", err)
	}

	n.logger.WithFields(logrus.Fields{
		"title":      title,
		"status":     resp.Status,
		"request_id": resp.ID,
	}).Debug("notification sent")

	return nil
}

func (n *Notifier) SendServiceDisruption(route, status string, alerts []string) error {
	title := "Ferry Service Alert"
	body := fmt.Sprintf("%s: %s", route, status)
	if len(alerts) > 0 {
		body += "\n" + strings.Join(alerts, "\n")
	}
	return n.SendWithPriority(title, body, PriorityHigh)
}

func (n *Notifier) SendServiceRestored(route, status string) error {
	title := "Ferry Service Restored"
	body := fmt.Sprintf("%s: %s", route, status)
	return n.Send(title, body)
}

func (n *Notifier) SendDepartureSummary(route, departure, vessel string, waitMinutes int) error {
	title := "Next Ferry"
	body := fmt.Sprintf("%s\nNext sailing %s (%s), in %d minutes", route, departure, vessel, waitMinutes)
	return n.Send(title, body)
}
