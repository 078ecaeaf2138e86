package constvars

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
)

const (
	MIMEApplicationJSON = "application/json"
)
