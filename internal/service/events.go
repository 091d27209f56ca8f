package service

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmynk/totalmanager/internal/calculator"
	"github.com/mmynk/totalmanager/internal/ids"
	"github.com/mmynk/totalmanager/internal/models"
)

var printer = message.NewPrinter(language.English)

// newLog builds an event log for collectionID stamped at now.
func newLog(collectionID string, typ models.LogType, msg string, now time.Time) *models.EventLog {
	return &models.EventLog{
		ID:           ids.New(),
		CollectionID: collectionID,
		Type:         typ,
		Message:      msg,
		CreatedAt:    now.Unix(),
	}
}

func readMessage(name string) string {
	return name + " marked as read"
}

func paidMessage(name string) string {
	return name + " marked as paid"
}

// noticeMessage formats the default notice text, e.g.
// "'Field trip' collection notice: 30,000 won, due 2025-05-01".
func noticeMessage(c *models.Collection) string {
	return printer.Sprintf("'%s' collection notice: %d won, due %s",
		c.Title, c.Amount, c.DueDate.Format(models.DateLayout))
}

// noticeLogs returns the logs written when a notice is sent: the notice
// itself followed by one reminder_scheduled entry per follow-up date.
func noticeLogs(c *models.Collection, msg string, now time.Time) []*models.EventLog {
	logs := []*models.EventLog{newLog(c.ID, models.LogTypeNoticeSent, msg, now)}
	for _, d := range calculator.NoticeReminderDates(c.DueDate) {
		logs = append(logs, newLog(c.ID, models.LogTypeReminderScheduled,
			fmt.Sprintf("Reminder scheduled: %s", d.Format(models.DateLayout)), now))
	}
	return logs
}

// reminderText is what a sent reminder says.
func reminderText(r *models.Reminder) string {
	if r.Message != "" {
		return r.Message
	}
	return r.Title
}
