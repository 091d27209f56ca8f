package api

// Reminder is a scheduled notification owned by the caller.
type Reminder struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	CollectionID string `json:"collection_id,omitempty"`
	Title        string `json:"title"`
	ScheduledAt  int64  `json:"scheduled_at"`
	RepeatType   string `json:"repeat_type"`
	Message      string `json:"message,omitempty"`
	IsSent       bool   `json:"is_sent"`
	SentAt       *int64 `json:"sent_at,omitempty"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    *int64 `json:"updated_at,omitempty"`
}

type CreateReminderRequest struct {
	CollectionID string `json:"collection_id,omitempty"`
	Title        string `json:"title" validate:"required,max=200"`
	ScheduledAt  int64  `json:"scheduled_at" validate:"gt=0"`
	RepeatType   string `json:"repeat_type,omitempty"`
	Message      string `json:"message,omitempty" validate:"max=500"`
}

type CreateReminderResponse struct {
	Reminder *Reminder `json:"reminder"`
}

type ListRemindersRequest struct {
	IsSent       *bool  `json:"is_sent,omitempty"`
	CollectionID string `json:"collection_id,omitempty"`
}

type ListRemindersResponse struct {
	Reminders []*Reminder `json:"reminders"`
}

type GetReminderRequest struct {
	ReminderID string `json:"reminder_id" validate:"required"`
}

type GetReminderResponse struct {
	Reminder *Reminder `json:"reminder"`
}

type UpdateReminderRequest struct {
	ReminderID  string  `json:"reminder_id" validate:"required"`
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	ScheduledAt *int64  `json:"scheduled_at,omitempty" validate:"omitempty,gt=0"`
	RepeatType  *string `json:"repeat_type,omitempty"`
	Message     *string `json:"message,omitempty" validate:"omitempty,max=500"`
}

type UpdateReminderResponse struct {
	Reminder *Reminder `json:"reminder"`
}

type DeleteReminderRequest struct {
	ReminderID string `json:"reminder_id" validate:"required"`
}

type SendReminderRequest struct {
	ReminderID string `json:"reminder_id" validate:"required"`
}

type SendReminderResponse struct {
	Reminder *Reminder `json:"reminder"`
	// Next is the follow-up reminder created for a repeating reminder.
	Next *Reminder `json:"next,omitempty"`
}
