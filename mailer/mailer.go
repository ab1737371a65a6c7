package mailer

import (
	"errors"
	"os"

	"github.com/matcornic/hermes/v2"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendResetPassword mails a password-reset link carrying the one-time
// token. The HTML body is rendered with hermes and delivered through
// sendgrid.
func SendResetPassword(toEmail, token string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return errors.New("sendgrid api key not configured")
	}
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:3000"
	}

	h := hermes.Hermes{
		Product: hermes.Product{
			Name: "Social Media",
			Link: appURL,
		},
	}

	email := hermes.Email{
		Body: hermes.Body{
			Intros: []string{
				"You have received this email because a password reset request was received for your account.",
			},
			Actions: []hermes.Action{
				{
					Instructions: "Click the button below to reset your password:",
					Button: hermes.Button{
						Color: "#DC4D2F",
						Text:  "Reset your password",
						Link:  appURL + "/password/reset?token=" + token,
					},
				},
			},
			Outros: []string{
				"If you did not request a password reset, no further action is required on your part.",
			},
		},
	}

	emailBody, err := h.GenerateHTML(email)
	if err != nil {
		return err
	}

	from := mail.NewEmail("Social Media", os.Getenv("MAIL_FROM"))
	to := mail.NewEmail(toEmail, toEmail)
	message := mail.NewSingleEmail(from, "Reset your password", to, "", emailBody)

	client := sendgrid.NewSendClient(apiKey)
	_, err = client.Send(message)
	return err
}
