package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendAppointmentEmail sends a best-effort appointment notification to the
// patient. When SMTP is not configured the call is a no-op so that local
// setups and tests run without a mail server.
func SendAppointmentEmail(to, patientName, date, timeOfDay, status string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		return nil
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT value: %w", err)
	}
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your appointment is "+status)

	body := fmt.Sprintf("Dear %s,\n\nYour appointment on %s at %s is %s.\n\nNovaClinic",
		patientName, date, timeOfDay, status)
	m.SetBody("text/plain", body)

	htmlBody := fmt.Sprintf(`
	<html>
	<body>
		<p>Dear %s,</p>
		<p>Your appointment on <b>%s</b> at <b>%s</b> is <b>%s</b>.</p>
		<p>NovaClinic</p>
	</body>
	</html>
	`, patientName, date, timeOfDay, status)
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
