package notifications

import (
	"strings"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

// Kind вид уведомления
type Kind string

const (
	KindConfirmed Kind = "confirmed"
	KindCancelled Kind = "cancelled"
	KindReminder  Kind = "reminder"
)

// Templates шаблоны сообщений. Поддерживаются подстановки
// {client} {date} {time} {service} {professional}
type Templates struct {
	Confirmed  string
	Cancelled  string
	Reminder   string
	DateLayout string
}

// DefaultTemplates шаблоны по умолчанию
func DefaultTemplates() Templates {
	return Templates{
		Confirmed:  "Olá, {client}! Seu agendamento de {service} para {date} às {time} foi confirmado. Te aguardamos!",
		Cancelled:  "Olá, {client}. Seu agendamento de {service} para {date} às {time} foi cancelado.",
		Reminder:   "Olá, {client}! Lembrete: {service} em {date} às {time}. Até já!",
		DateLayout: "02/01/2006",
	}
}

// withDefaults подставляет шаблоны по умолчанию вместо пустых
func (t Templates) withDefaults() Templates {
	defaults := DefaultTemplates()
	if t.Confirmed == "" {
		t.Confirmed = defaults.Confirmed
	}
	if t.Cancelled == "" {
		t.Cancelled = defaults.Cancelled
	}
	if t.Reminder == "" {
		t.Reminder = defaults.Reminder
	}
	if t.DateLayout == "" {
		t.DateLayout = defaults.DateLayout
	}
	return t
}

// Render собирает текст сообщения для записи
func (t Templates) Render(kind Kind, a *domain.Appointment, professionalName string) string {
	var template string
	switch kind {
	case KindConfirmed:
		template = t.Confirmed
	case KindCancelled:
		template = t.Cancelled
	case KindReminder:
		template = t.Reminder
	}

	return strings.NewReplacer(
		"{client}", a.ClientName,
		"{date}", a.Date.Format(t.DateLayout),
		"{time}", a.Time.String(),
		"{service}", a.ServiceName,
		"{professional}", professionalName,
	).Replace(template)
}
