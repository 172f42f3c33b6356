package domain

import "time"

// ContactMessage — сообщение из формы обратной связи
type ContactMessage struct {
	Name      string
	Email     string
	Message   string
	Timestamp time.Time
}

func NewContactMessage(name, email, message string, now time.Time) *ContactMessage {
	return &ContactMessage{
		Name:      name,
		Email:     email,
		Message:   message,
		Timestamp: now.UTC(),
	}
}
