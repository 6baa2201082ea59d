package constvars

const (
	RegexPhoneDigits = `^\+?\d{7,15}$`
)
