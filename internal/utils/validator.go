package utils

import (
	"io"
	"net/http"
	"regexp"
	"unicode/utf8"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	digitsPattern   = regexp.MustCompile(`^[0-9]+$`)
	passwordCharset = regexp.MustCompile(`^[a-zA-Z0-9[:punct:]]+$`)
	hasLetter       = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidateUsername checks if the username meets the requirements.
func ValidateUsername(username string) (bool, string) {
	if l := len(username); l < 4 || l > 50 {
		return false, "Username must be between 4 and 50 characters"
	}
	if !usernamePattern.MatchString(username) {
		return false, "Username may only contain letters, digits and underscores"
	}
	if digitsPattern.MatchString(username) {
		return false, "Username must not be only digits"
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 || len(password) > 72 {
		return false, "Password must be between 8 and 72 characters"
	}
	if !passwordCharset.MatchString(password) {
		return false, "Password may only contain letters, digits and symbols"
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return false, "Password must contain at least one letter and one digit"
	}
	return true, ""
}

func ValidateEmail(email string) (bool, string) {
	if len(email) > 255 || !emailPattern.MatchString(email) {
		return false, "Invalid email address"
	}
	return true, ""
}

// ValidateTextLength counts runes, not bytes.
func ValidateTextLength(text string, min, max int) bool {
	n := utf8.RuneCountInString(text)
	return n >= min && n <= max
}

var allowedImageTypes = map[string]bool{
	"image/jpeg":     true,
	"image/png":      true,
	"image/gif":      true,
	"image/webp":     true,
	"image/bmp":      true,
	"image/x-ms-bmp": true,
}

// ValidateImageContent sniffs the first 512 bytes and rewinds the reader.
func ValidateImageContent(reader io.ReadSeeker) (bool, string) {
	buffer := make([]byte, 512)
	n, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return false, "Failed to read file content"
	}

	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return false, "Failed to rewind file"
	}

	contentType := http.DetectContentType(buffer[:n])
	if !allowedImageTypes[contentType] {
		return false, "Unsupported file type: " + contentType
	}
	return true, ""
}
