package utils

import (
	"fmt"
	"log"

	"github.com/wneessen/go-mail"

	"quickplate_back_end/internal/config"
)

// SMTPMailer envoie les e-mails transactionnels via le serveur SMTP
// configuré.
type SMTPMailer struct {
	cfg *config.Config
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendOtpEmail envoie le code de réinitialisation. L'appelant ne doit
// persister le code que si cet envoi a réussi.
func (m *SMTPMailer) SendOtpEmail(to, name, otp string) error {
	msg := mail.NewMsg()

	if err := msg.From(m.cfg.MailFrom); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("New Otp has been generated")
	msg.SetBodyString(mail.TypeTextHTML, otpEmailHTML(name, otp))

	client, err := mail.NewClient(m.cfg.SMTPHost,
		mail.WithPort(m.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.cfg.SMTPUsername),
		mail.WithPassword(m.cfg.SMTPPassword),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi du code de réinitialisation à", to)
	return client.DialAndSend(msg)
}

func otpEmailHTML(name, otp string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0"/>
	<title>Password reset code</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Password reset</h2>
		<p>Hello <b>%s</b>,</p>
		<h3>Your generated Otp is : <i>%s</i></h3>

		<p style="font-size: 14px; color: #888; border-left: 3px solid #ffa500; padding-left: 15px; margin-top: 20px;">
			<strong>⚠️</strong> This code is valid for 10 minutes only.
		</p>

		<p style="font-size: 14px; color: #888; margin-top: 20px;">
			If you did not request this code, you can safely ignore this email.
		</p>

		<p style="margin-top: 30px; color: #555;">
			<strong>The quick-plate team</strong>
		</p>
	</div>
</body>
</html>`, name, otp)
}
