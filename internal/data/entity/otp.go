package entity

// OTP holds the single live code for an email identity. A re-issue
// overwrites Code in place; there is never a second row per email.
type OTP struct {
	Email string `db:"email"`
	Code  string `db:"otp"`
}
