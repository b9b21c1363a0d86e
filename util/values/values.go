package values

// Status strings returned in the ServerResponse envelope. util.StatusCode
// maps them to HTTP status codes.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
	ActiveLogin    = "active-login"

	SystemErr = "System error"
)

const (
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestSource = "X-Request-Source"
)

type ContextKey string

const (
	ContextTracingKey   = ContextKey("tracing-context")
	ContextPrincipalKey = ContextKey("principal")
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)
