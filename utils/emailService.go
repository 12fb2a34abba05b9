package utils

import (
	"clubhub/config"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid. Callers fire it on a
// goroutine; delivery failures are logged, never surfaced to the request.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridAPIKey == "" {
		log.Printf("Skipping email to %s (no SendGrid key configured): %s", toEmail, subject)
		return nil
	}

	from := mail.NewEmail("ClubHub", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", getEmailTemplate(subject, htmlBody))

	client := sendgrid.NewSendClient(config.AppConfig.SendgridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned %d", resp.StatusCode)
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #667eea; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #2c3e50; line-height: 1.6; }
			.content h2 { color: #2c3e50; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #667eea; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CLUBHUB</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 ClubHub. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendWelcomeEmail greets a newly registered user.
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>ClubHub</strong>! Your account has been created.</p>
		<p>Join a club, attend meetings and start working towards your first level.</p>
	`, name)

	go SendEmail(email, name, "Welcome to ClubHub", body)
}

// SendAchievementDecidedEmail notifies a member about an achievement decision.
func SendAchievementDecidedEmail(email, name, levelTitle, status string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your achievement request for <strong>%s</strong> has been <strong>%s</strong>.</p>
		<p>Check your dashboard for details.</p>
	`, name, levelTitle, status)

	go SendEmail(email, name, "Achievement request "+status, body)
}

// SendCertificateIssuedEmail notifies a member that their certificate is ready.
func SendCertificateIssuedEmail(email, name string, levelNumber int, fileURL string) {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your certificate for <strong>Level %d</strong> has been issued!</p>
		<div class="info-box">
			<a href="%s">Download your certificate</a>
		</div>
	`, name, levelNumber, fileURL)

	go SendEmail(email, name, "Your certificate is ready", body)
}
