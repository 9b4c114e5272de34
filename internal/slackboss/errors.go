package slackboss

import (
	"errors"
	"fmt"

	"github.com/slack-go/slack"
)

// ConfigError reports a missing precondition that should have been
// established before the call: a missing bot token, or an entity that was
// expected to already carry its Slack identity record. Never retried.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// UsageError reports an invalid combination of reference arguments, e.g.
// a reference with none of its variants set. Always a caller bug.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}

// APIError wraps a Slack Web API failure, keeping the raw error code so
// callers can tell rate limits from permission problems.
type APIError struct {
	Op   string
	Code string
	Err  error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("slack %s failed: %s", e.Op, e.Code)
}

func (e *APIError) Unwrap() error { return e.Err }

func apiError(op string, err error) *APIError {
	return &APIError{Op: op, Code: errorCode(err), Err: err}
}

// errorCode extracts the Slack error code string from a client error.
func errorCode(err error) string {
	var resp slack.SlackErrorResponse
	if errors.As(err, &resp) {
		return resp.Err
	}
	return err.Error()
}

// codeIs reports whether err carries one of the given Slack error codes.
func codeIs(err error, codes ...string) bool {
	code := errorCode(err)
	for _, c := range codes {
		if code == c {
			return true
		}
	}
	return false
}
