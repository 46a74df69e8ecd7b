package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// GravatarURL returns the identicon avatar URL for email. No request is made.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?d=identicon"
}
