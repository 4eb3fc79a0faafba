package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var handleRegex = regexp.MustCompile(`^[a-z0-9_]{3,30}$`)

// RegisterCustomValidators attaches project validators to gin's binding engine.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("handle", validateHandle); err != nil {
		return err
	}
	if err := v.RegisterValidation("taglist", validateTagList); err != nil {
		return err
	}
	return nil
}

// validateHandle enforces lowercase letters, digits and underscores, 3-30 chars.
func validateHandle(fl validator.FieldLevel) bool {
	return handleRegex.MatchString(fl.Field().String())
}

// validateTagList caps a tag slice at 15 entries of at most 40 chars each.
func validateTagList(fl validator.FieldLevel) bool {
	tags, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	if len(tags) > 15 {
		return false
	}
	for _, t := range tags {
		if t == "" || len(t) > 40 {
			return false
		}
	}
	return true
}
