// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"investio/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("product_type", validateProductType)
		_ = v.RegisterValidation("yield_type", validateYieldType)
		_ = v.RegisterValidation("reference_index", validateReferenceIndex)
	}
}

func validateProductType(fl validator.FieldLevel) bool {
	_, ok := models.ProductType(fl.Field().String()).IncomeClass()
	return ok
}

func validateYieldType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pre_fixed", "post_fixed":
		return true
	}
	return false
}

func validateReferenceIndex(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "none", "cdi", "selic", "ipca":
		return true
	}
	return false
}
