package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	en "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// validate holds the settings and caches for validating requests.
var validate = validator.New()

// translator is a cache of locale and translation information.
var translator *ut.UniversalTranslator

func init() {
	translator = ut.New(en.New(), en.New())
	trans, _ := translator.GetTranslator("en")
	enTranslations.RegisterDefaultTranslations(validate, trans)
}

// Decode reads the body of an HTTP request looking for a JSON document
// and unmarshals it into v. If v is a struct and has validate tags,
// those are also checked.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("unable to decode payload: %w", err)
	}

	if err := validate.Struct(v); err != nil {
		verrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		trans, _ := translator.GetTranslator("en")
		fields := make(map[string]string)
		for _, verror := range verrors {
			fields[verror.Field()] = verror.Translate(trans)
		}

		return &FieldErrors{Fields: fields}
	}

	return nil
}

// FieldErrors represents a collection of field-level validation
// errors, keyed by the offending struct field name.
type FieldErrors struct {
	Fields map[string]string
}

func (fe *FieldErrors) Error() string {
	return fmt.Sprintf("field validation error: %v", fe.Fields)
}
