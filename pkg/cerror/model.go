package cerror

import (
	"github.com/goccy/go-json"
	"go.uber.org/zap/zapcore"
)

// CustomError carries what the error middleware needs: the response status
// and body fields, and how the failure should be logged.
type CustomError struct {
	HttpStatusCode int             `json:"httpStatus"`
	Code           string          `json:"code,omitempty"`
	Message        string          `json:"message,omitempty"`
	LogMessage     string          `json:"-"`
	LogSeverity    zapcore.Level   `json:"-"`
	LogFields      []zapcore.Field `json:"-"`
}

func NewError(httpStatusCode int, logMessage string, logFields ...zapcore.Field) *CustomError {
	return &CustomError{
		HttpStatusCode: httpStatusCode,
		LogMessage:     logMessage,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) Error() string {
	return cerr.LogMessage
}

func (cerr *CustomError) SetSeverity(severity zapcore.Level) *CustomError {
	cerr.LogSeverity = severity
	return cerr
}

func (cerr *CustomError) SetCode(code, message string) *CustomError {
	cerr.Code = code
	cerr.Message = message
	return cerr
}

// WithFields returns a copy with extra log fields, leaving predefined errors
// untouched.
func (cerr *CustomError) WithFields(logFields ...zapcore.Field) *CustomError {
	copied := *cerr
	copied.LogFields = append(append([]zapcore.Field{}, cerr.LogFields...), logFields...)
	return &copied
}

func (cerr *CustomError) Serialize() []byte {
	marshalledToByte, _ := json.Marshal(cerr)
	return marshalledToByte
}
