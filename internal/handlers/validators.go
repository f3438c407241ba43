package handlers

import (
	"github.com/ShiftWise/shiftwise_app/internal/utils/clocktime"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// The clocktime rule validates 24-hour "HH:MM" fields on request payloads.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("clocktime", func(fl validator.FieldLevel) bool {
			return clocktime.IsValid(fl.Field().String())
		})
	}
}
