package notify

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/m04kA/NSS-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки email-уведомлений через SendGrid.
// При enabled=false письма не отправляются, только логируются.
type Client struct {
	enabled   bool
	apiKey    string
	fromEmail string
	fromName  string
	logger    Logger
}

// NewClient создает новый клиент уведомлений
func NewClient(enabled bool, apiKey, fromEmail, fromName string, logger Logger) *Client {
	return &Client{
		enabled:   enabled,
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}
}

// SendConfirmation отправляет клиенту подтверждение записи.
// Отправка выполняется в фоне и не блокирует вызывающий код.
func (c *Client) SendConfirmation(appt *domain.Appointment) {
	subject := "Ваша запись подтверждена"
	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\nВы записаны на услугу «%s» %s в %s.\nКод записи: %s\n\nЖдём вас!",
		appt.ClientName,
		appt.ServiceName,
		appt.AppointmentDate.Format(domain.DateFormat),
		appt.StartTime,
		appt.Code,
	)

	c.sendAsync(appt, subject, body)
}

// SendCancellation отправляет клиенту уведомление об отмене записи
func (c *Client) SendCancellation(appt *domain.Appointment, reason string) {
	subject := "Ваша запись отменена"
	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\nВаша запись на услугу «%s» %s в %s отменена.",
		appt.ClientName,
		appt.ServiceName,
		appt.AppointmentDate.Format(domain.DateFormat),
		appt.StartTime,
	)
	if reason != "" {
		body += fmt.Sprintf("\nПричина: %s", reason)
	}

	c.sendAsync(appt, subject, body)
}

// SendReminder отправляет клиенту напоминание о завтрашней записи
func (c *Client) SendReminder(appt *domain.Appointment) {
	subject := "Напоминание о записи"
	body := fmt.Sprintf(
		"Здравствуйте, %s!\n\nНапоминаем: завтра, %s в %s, вы записаны на услугу «%s».\n\nЖдём вас!",
		appt.ClientName,
		appt.AppointmentDate.Format(domain.DateFormat),
		appt.StartTime,
		appt.ServiceName,
	)

	c.sendAsync(appt, subject, body)
}

func (c *Client) sendAsync(appt *domain.Appointment, subject, body string) {
	if appt.ClientEmail == nil || *appt.ClientEmail == "" {
		c.logger.Info("sendAsync: appointment id=%d has no client email, skipping %q", appt.ID, subject)
		return
	}

	if !c.enabled {
		c.logger.Info("sendAsync: notifications disabled, skipping %q for appointment id=%d", subject, appt.ID)
		return
	}

	toEmail := *appt.ClientEmail
	toName := appt.ClientName

	go func() {
		if err := c.send(toEmail, toName, subject, body); err != nil {
			c.logger.Error("sendAsync: failed to send %q to %s: %v", subject, toEmail, err)
			return
		}
		c.logger.Info("sendAsync: sent %q to %s", subject, toEmail)
	}()
}

func (c *Client) send(toEmail, toName, subject, body string) error {
	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d: %s", ErrSendFailed, response.StatusCode, response.Body)
	}

	return nil
}
