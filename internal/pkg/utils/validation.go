package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("lesson_duration", validateLessonDuration)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateLessonDuration(fl validator.FieldLevel) bool {
	return IsAllowedDuration(int(fl.Field().Int()))
}
