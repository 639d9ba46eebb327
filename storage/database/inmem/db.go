// Package inmemdb is the in-memory storage backend. It is the
// authoritative record store while the app runs without a real database:
// records live for the process lifetime only, and every operation sleeps a
// fixed simulated latency to keep callers honest about the remote API that
// will eventually replace it.
package inmemdb

import (
	"time"

	"github.com/google/uuid"

	"github.com/bahati/malezi/core"
	"github.com/bahati/malezi/core/child"
	"github.com/bahati/malezi/core/course"
	"github.com/bahati/malezi/core/document"
	"github.com/bahati/malezi/core/educator"
	"github.com/bahati/malezi/core/expense"
	"github.com/bahati/malezi/core/payment"
	"github.com/bahati/malezi/core/prereg"
	"github.com/bahati/malezi/core/schedule"
	"github.com/bahati/malezi/core/user"
)

type DB struct {
	user     *table[user.User]
	child    *table[child.Child]
	educator *table[educator.Educator]
	course   *table[course.Course]
	payment  *table[payment.Payment]
	prereg   *table[prereg.PreRegistration]
	document *table[document.Document]
	schedule *table[schedule.Event]
	expense  *table[expense.Expense]
}

func Open(conf *core.Config) (*DB, error) {
	latency := conf.Database.SimulatedLatency
	db := &DB{
		user:     newTable[user.User](latency),
		child:    newTable[child.Child](latency),
		educator: newTable[educator.Educator](latency),
		course:   newTable[course.Course](latency),
		payment:  newTable[payment.Payment](latency),
		prereg:   newTable[prereg.PreRegistration](latency),
		document: newTable[document.Document](latency),
		schedule: newTable[schedule.Event](latency),
		expense:  newTable[expense.Expense](latency),
	}
	return db, nil
}

func newID() string {
	return uuid.New().String()
}

// mergeString keeps orig when the update left the field empty.
func mergeString(orig, updated string) string {
	if updated != "" {
		return updated
	}
	return orig
}

func touch(t *time.Time) {
	*t = time.Now().UTC()
}
