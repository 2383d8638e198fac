package common

// RequestIDHeaderName carries the per-request identifier on HTTP requests
// and responses.
const RequestIDHeaderName = "X-Request-ID"

// ServiceName is reported to tracing and health checks.
const ServiceName = "footsteps"
