package utils

import "regexp"

var (
	phoneRegex = regexp.MustCompile(`^1[3-9]\d{9}$`)
	// 6-20 chars, at least one letter and one digit, common symbols allowed
	passwordCharsRegex  = regexp.MustCompile(`^[A-Za-z\d!@#$%^&*()_+={}|[\]:;"'<>?,./` + "`" + `~\-\\]{6,20}$`)
	passwordLetterRegex = regexp.MustCompile(`[A-Za-z]`)
	passwordDigitRegex  = regexp.MustCompile(`\d`)
)

// IsValidPhone reports whether phone is a well-formed mobile number
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// IsValidUsername reports whether username is 3-20 characters long
func IsValidUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 20
}

// IsValidPassword enforces the password policy: 6-20 characters from the
// allowed set, containing at least one letter and one digit
func IsValidPassword(password string) bool {
	return passwordCharsRegex.MatchString(password) &&
		passwordLetterRegex.MatchString(password) &&
		passwordDigitRegex.MatchString(password)
}
