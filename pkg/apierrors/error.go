package apierrors

import (
	"fmt"

	"github.com/axlwolf/task-manager/pkg/translator"
)

// JsonErr is the body of every error response.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

type Err struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{Code: code, Message: GetTransErrorMsg(msgKey, lang)}}
}

// WithFields attaches per-field validation messages.
func (e JsonErr) WithFields(fields map[string]string) JsonErr {
	e.ErrDetails.Fields = fields
	return e
}

func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(lang, msgKey)
}
