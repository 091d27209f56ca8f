package service

import (
	"github.com/mmynk/totalmanager/internal/calculator"
	"github.com/mmynk/totalmanager/internal/models"
	"github.com/mmynk/totalmanager/pkg/api"
)

func toAPIGroup(g *models.Group) *api.Group {
	return &api.Group{
		ID:        g.ID,
		OwnerID:   g.OwnerID,
		Name:      g.Name,
		Type:      string(g.Type),
		CreatedAt: g.CreatedAt,
	}
}

func toAPICollection(c *models.Collection) *api.Collection {
	return &api.Collection{
		ID:           c.ID,
		GroupID:      c.GroupID,
		Title:        c.Title,
		Amount:       c.Amount,
		DueDate:      c.DueDate.Format(models.DateLayout),
		PaymentType:  string(c.PaymentType),
		PaymentValue: c.PaymentValue,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
	}
}

func toAPISummary(c *models.Collection, s calculator.Summary) *api.CollectionSummary {
	return &api.CollectionSummary{
		ID:            c.ID,
		Title:         c.Title,
		Amount:        c.Amount,
		DueDate:       c.DueDate.Format(models.DateLayout),
		Status:        string(c.Status),
		PaymentType:   string(c.PaymentType),
		PaymentValue:  c.PaymentValue,
		TotalMembers:  s.TotalMembers,
		ReadMembers:   s.ReadMembers,
		PaidMembers:   s.PaidMembers,
		CurrentAmount: s.CurrentAmount,
	}
}

func toAPIMember(m *models.Member) *api.Member {
	return &api.Member{
		ID:           m.ID,
		CollectionID: m.CollectionID,
		DisplayName:  m.DisplayName,
		Phone:        m.Phone,
		ReadAt:       m.ReadAt,
		PaidAt:       m.PaidAt,
		CreatedAt:    m.CreatedAt,
	}
}

func toAPIMembers(members []*models.Member) []*api.Member {
	out := make([]*api.Member, len(members))
	for i, m := range members {
		out[i] = toAPIMember(m)
	}
	return out
}

func toAPIEventLogs(logs []*models.EventLog) []*api.EventLog {
	out := make([]*api.EventLog, len(logs))
	for i, l := range logs {
		out[i] = &api.EventLog{
			ID:           l.ID,
			CollectionID: l.CollectionID,
			Type:         string(l.Type),
			Message:      l.Message,
			CreatedAt:    l.CreatedAt,
		}
	}
	return out
}

func toAPIReminder(r *models.Reminder) *api.Reminder {
	if r == nil {
		return nil
	}
	return &api.Reminder{
		ID:           r.ID,
		UserID:       r.UserID,
		CollectionID: r.CollectionID,
		Title:        r.Title,
		ScheduledAt:  r.ScheduledAt,
		RepeatType:   string(r.RepeatType),
		Message:      r.Message,
		IsSent:       r.IsSent,
		SentAt:       r.SentAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:              u.ID,
		Name:            u.Name,
		Phone:           u.Phone,
		Email:           u.Email,
		ProfileImageURL: u.ProfileImageURL,
		IsOnboarded:     u.IsOnboarded,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func toAPISettings(s *models.UserSettings) *api.NotificationSettings {
	return &api.NotificationSettings{
		PushNotificationsEnabled:     s.PushNotificationsEnabled,
		EmailNotificationsEnabled:    s.EmailNotificationsEnabled,
		ReminderNotificationsEnabled: s.ReminderNotificationsEnabled,
	}
}

func toAPIPaymentMethod(m *models.PaymentMethod) *api.PaymentMethod {
	return &api.PaymentMethod{
		ID:            m.ID,
		UserID:        m.UserID,
		BankName:      m.BankName,
		AccountNumber: m.AccountNumber,
		AccountHolder: m.AccountHolder,
		IsDefault:     m.IsDefault,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
