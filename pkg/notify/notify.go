// Package notify publishes event lifecycle notifications to NATS.
package notify

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// SubjectPrefix is followed by the action name
	SubjectPrefix = "recipes.v1.events."
	// SubjectWildcard matches every event notification
	SubjectWildcard = SubjectPrefix + "*"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Publisher is satisfied by *nats.Conn
type Publisher interface {
	Publish(subj string, data []byte) error
}

// Notifier sends notifications through a Publisher. A nil Notifier or one
// without a publisher drops everything.
type Notifier struct {
	pub Publisher
}

func New(pub Publisher) *Notifier {
	return &Notifier{pub: pub}
}

// Publish marshals v and sends it on the subject for action.
func (n *Notifier) Publish(action string, v interface{}) error {
	if n == nil || n.pub == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal notification")
	}

	if err := n.pub.Publish(SubjectPrefix+action, data); err != nil {
		return errors.Wrapf(err, "failed to publish %s notification", action)
	}

	return nil
}

// Notify is Publish for callers that must not fail on delivery errors.
func (n *Notifier) Notify(action string, v interface{}) {
	if err := n.Publish(action, v); err != nil {
		log.WithField("action", action).Warn("notify: ", err)
	}
}

// ActionFromSubject returns the action part of a notification subject.
func ActionFromSubject(subject string) string {
	return strings.TrimPrefix(subject, SubjectPrefix)
}
