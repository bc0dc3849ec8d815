package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// AssignmentSender mails an agent when leads land on their plate.
// Agent mailboxes are <username>@Domain; the portal keeps no per-user
// email addresses.
type AssignmentSender struct {
	Host     string
	Port     int
	User     string
	Password string
	Domain   string
}

func NewAssignmentSender(host string, port int, user, password, domain string) *AssignmentSender {
	return &AssignmentSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		Domain:   domain,
	}
}

func (s *AssignmentSender) NotifyAssignment(agent string, count int) error {
	noun := "leads"
	if count == 1 {
		noun = "lead"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@"+s.Domain)
	m.SetHeader("To", agent+"@"+s.Domain)
	m.SetHeader("Subject", fmt.Sprintf("%d new %s assigned to you", count, noun))
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\n%d %s just landed in your queue. Open My Leads in the portal to start calling.\n",
		agent, count, noun,
	))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send assignment mail: %w", err)
	}
	return nil
}
