package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"tavolo/internal/domain/restaurant"
)

// registerValidations installs custom binding rules on gin's validator engine
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return restaurant.IsValidSlug(fl.Field().String())
	})
}
