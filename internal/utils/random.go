package utils

import (
	"math/rand"
)

// jobColorPalette is the display palette for calendar cards. The color is a
// rendering tag only; the allocator never looks at it.
var jobColorPalette = []string{
	"#4f8ef7", "#f7784f", "#42b883", "#b25df2",
	"#f2b705", "#e05d7e", "#28b4c8", "#8d9c44",
}

func RandomJobColor() string {
	return jobColorPalette[rand.Intn(len(jobColorPalette))]
}

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateRandomPassword(length int) string {
	password := make([]byte, length)
	for i := range password {
		password[i] = passwordCharset[rand.Intn(len(passwordCharset))]
	}
	return string(password)
}
