package model

// ErrorBody carries a stable code and a caller-safe message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
