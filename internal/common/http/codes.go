package http

const (
	CodeUnknown          = "UNKNOWN"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInvalidPath      = "INVALID_PATH"
	CodeNotFound         = "NOT_FOUND"
)
