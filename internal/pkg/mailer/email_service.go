package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendModerationAlert(subject, excerpt string) error
}

type emailService struct {
	dialer         *gomail.Dialer
	senderEmail    string
	moderatorEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail, moderatorEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:         d,
		senderEmail:    senderEmail,
		moderatorEmail: moderatorEmail,
	}
}

// SendModerationAlert mails the moderation inbox when new feedback lands.
func (s *emailService) SendModerationAlert(subject, excerpt string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", s.moderatorEmail)
	m.SetHeader("Subject", "[Forum] "+subject)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s</h2>
			<p>%s</p>
			<p>Open the moderation dashboard to review it.</p>
		</div>
	`, subject, excerpt)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	return nil
}
