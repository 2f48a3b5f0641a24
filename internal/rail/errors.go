package rail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/AlexZinkM/rail-wallet/internal/client"
)

// ProviderError is a failed call to a rail provider or chain node.
// Definitive means the provider affirmatively rejected the request, so no
// side effect happened; otherwise the outcome is unknown.
type ProviderError struct {
	Provider   string
	StatusCode int
	Code       string
	Message    string
	Definitive bool
	Err        error
}

func (e *ProviderError) Error() string {
	kind := "ambiguous"
	if e.Definitive {
		kind = "rejected"
	}
	msg := fmt.Sprintf("%s provider error (%s)", e.Provider, kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status %d", e.StatusCode)
	}
	if e.Code != "" {
		msg += " code " + e.Code
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AsProviderError extracts a *ProviderError from err's chain.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	ok := errors.As(err, &pe)
	return pe, ok
}

// IsDefinitive reports whether err is a provider rejection with no side effect.
func IsDefinitive(err error) bool {
	pe, ok := AsProviderError(err)
	return ok && pe.Definitive
}

// Rejected builds a definitive ProviderError.
func Rejected(provider, code, message string) *ProviderError {
	return &ProviderError{Provider: provider, Code: code, Message: message, Definitive: true}
}

// Ambiguous builds a ProviderError whose outcome is unknown.
func Ambiguous(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Message: "outcome unknown", Err: err}
}

// FromHTTP classifies an error returned by client.RESTClient.
// Client errors other than 408 and 429 are definitive; server errors,
// timeouts and transport failures are ambiguous.
func FromHTTP(provider string, err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := AsProviderError(err); ok {
		return pe
	}

	httpErr, ok := client.AsHTTPError(err)
	if !ok {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return Ambiguous(provider, err)
	}

	code, message := parseErrorBody(httpErr.Body)
	if message == "" {
		message = http.StatusText(httpErr.StatusCode)
	}
	return &ProviderError{
		Provider:   provider,
		StatusCode: httpErr.StatusCode,
		Code:       code,
		Message:    message,
		Definitive: definitiveStatus(httpErr.StatusCode),
		Err:        err,
	}
}

func definitiveStatus(status int) bool {
	if status == http.StatusRequestTimeout || status == http.StatusTooManyRequests {
		return false
	}
	return status >= 400 && status < 500
}

// parseErrorBody pulls a code and message out of the common provider error
// shapes: {"code","message"} and {"error":{"code","message"}}.
func parseErrorBody(body string) (code, message string) {
	var flat struct {
		Code    json.RawMessage `json:"code"`
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &flat); err != nil {
		return "", ""
	}

	code, message = rawString(flat.Code), flat.Message
	if len(flat.Error) > 0 {
		var nested struct {
			Code    json.RawMessage `json:"code"`
			Message string          `json:"message"`
		}
		if json.Unmarshal(flat.Error, &nested) == nil {
			if code == "" {
				code = rawString(nested.Code)
			}
			if message == "" {
				message = nested.Message
			}
		} else if message == "" {
			message = rawString(flat.Error)
		}
	}
	return code, message
}

// rawString renders a JSON string or number without quotes.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(raw)
}
