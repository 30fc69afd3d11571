package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/rajudas/field-sales-api/internal/infra/queue"
)

var reminderTmpl = template.Must(template.New("reminder").Parse(`
<p>Follow-up due on <b>{{.FollowUpDate}}</b>.</p>
<ul>
  <li>Store: {{.StoreName}}</li>
  <li>Representative: {{.SRName}} ({{.Username}})</li>
  <li>Phone: {{.PhoneNumber}}</li>
  <li>Lead status: {{.LeadType}}</li>
</ul>
<p>Visit record #{{.VisitID}}.</p>
`))

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string // shared reminders inbox
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

func (s *EmailSender) SendFollowUpReminder(payload queue.ReminderPayload) error {
	var body bytes.Buffer
	if err := reminderTmpl.Execute(&body, payload); err != nil {
		return fmt.Errorf("render reminder template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Follow-up due: %s (%s)", payload.StoreName, payload.FollowUpDate))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send reminder email: %w", err)
	}
	return nil
}
