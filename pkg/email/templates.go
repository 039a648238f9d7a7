package email

import "fmt"

// BuildPasswordResetEmail builds the reset-code message sent by
// forgot-password. The code expires after ttlMinutes.
func BuildPasswordResetEmail(to, code string, ttlMinutes int) Message {
	subject := "Password Reset - HealHub"

	textBody := fmt.Sprintf(`Your password reset code is: %s

This code expires in %d minutes. If you did not request a reset, you can ignore this email.`,
		code, ttlMinutes)

	htmlBody := fmt.Sprintf(
		`<h2>Password Reset</h2><p>Your reset code is: <b>%s</b></p><p>This code expires in %d minutes.</p>`,
		code, ttlMinutes)

	return Message{
		To:       to,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
