package gosnowconn

import (
	"errors"
	"fmt"
)

// Error numbers in the configuration range. Anything the driver reports
// (network, auth, SQL) is passed through untouched and never carries one
// of these numbers.
const (
	ErrCodeDriverNotRegistered = 260001
	ErrCodeMissingCredentials  = 260002
	ErrCodeNoAuthSecret        = 260003
	ErrCodePrivateKeyParse     = 260004
)

type SnowconnError struct {
	Number      int
	Message     string
	MessageArgs []interface{}
}

func (se *SnowconnError) Error() string {
	message := se.Message
	if len(se.MessageArgs) > 0 {
		message = fmt.Sprintf(se.Message, se.MessageArgs...)
	}
	return fmt.Sprintf("%06d: %s", se.Number, message)
}

// IsConfigurationError reports whether err originated from credential
// resolution or key parsing rather than from the driver.
func IsConfigurationError(err error) bool {
	var se *SnowconnError
	if !errors.As(err, &se) {
		return false
	}
	switch se.Number {
	case ErrCodeDriverNotRegistered, ErrCodeMissingCredentials, ErrCodeNoAuthSecret, ErrCodePrivateKeyParse:
		return true
	}
	return false
}

func configError(number int, message string, args ...interface{}) *SnowconnError {
	return &SnowconnError{
		Number:      number,
		Message:     message,
		MessageArgs: args,
	}
}
