package ftp

import (
	"time"
)

type NotificationHandler func(notification Notification) error

// Notification ... A record of one session operation, delivered to the optional
// callback and mirrored into the structured log. The password never appears here.
type Notification struct {
	Host    string    `json:"host"`
	User    string    `json:"user"`
	Time    time.Time `json:"time"`
	Event   string    `json:"event"`
	Subject string    `json:"subject"`
	Target  string    `json:"target"`
	Error   error     `json:"error"`
}

func (c *Client) emit(event, subject, target string, err error) {
	if event == "ScanDir" {
		return
	}
	notification := Notification{
		Host:    c.host,
		User:    c.username,
		Time:    time.Now().UTC(),
		Event:   event,
		Subject: subject,
		Target:  target,
		Error:   err,
	}
	keyvals := []any{"host", c.host, "user", c.username, "event", event, "subject", subject}
	if target != "" {
		keyvals = append(keyvals, "target", target)
	}
	if err != nil {
		keyvals = append(keyvals, "err", err)
		c.logger.Error("FTP Event Triggered", keyvals...)
	} else {
		c.logger.Info("FTP Event Triggered", keyvals...)
	}
	if c.notify && c.notificationCallback != nil {
		c.notificationCallback(notification)
	}
}
