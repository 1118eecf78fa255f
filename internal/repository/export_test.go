package repository

// Export internal helpers for testing
var (
	FormatTime        = formatTime
	ParseTime         = parseTime
	NullTime          = nullTime
	IsUniqueViolation = isUniqueViolation
)
