package constvars

var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"email":           "must be a valid email address",
	"min":             "must be at least %s",
	"max":             "must be at most %s",
	"oneof":           "must be one of: %s",
	"appointment_date": "must be a valid date in YYYY-MM-DD format",
	"appointment_time": "must be a valid time in HH:MM format",
	"subscription_plan": "must be a known subscription plan",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}
