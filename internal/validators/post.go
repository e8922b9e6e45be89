package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/dev-connector/models"
)

// FieldText is the body of a post or comment.
const FieldText = "text"

// PostValidator validates post and comment payloads. Both share the same
// rules: text is required and bounded by maxLength characters.
type PostValidator struct {
	maxLength int
}

// NewPostValidator returns a Validator for [models.PostRequest].
func NewPostValidator(maxLength int) Validator {
	return &PostValidator{maxLength: maxLength}
}

func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PostRequest:
		return v.validatePostRequest(value, fields...)
	case *models.PostRequest:
		return v.validatePostRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validatePostRequest(req models.PostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldText:
			if isEmpty(req.Text) {
				errs.add(FieldText, "Text field is required")
			} else if utf8.RuneCountInString(req.Text) > v.maxLength {
				errs.add(FieldText, fmt.Sprintf("Post must be between 1 and %d characters", v.maxLength))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.errOrNil()
}
