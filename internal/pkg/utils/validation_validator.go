package utils

import (
	"mindmatch-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("appointment_date", validateAppointmentDate)
	validate.RegisterValidation("appointment_time", validateAppointmentTime)
	validate.RegisterValidation("subscription_plan", validateSubscriptionPlan)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAppointmentDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayout, fl.Field().String())
	return err == nil
}

func validateAppointmentTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.TimeLayout, fl.Field().String())
	return err == nil
}

func validateSubscriptionPlan(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.SubscriptionPlanStandard, constvars.SubscriptionPlanAdvanced, constvars.SubscriptionPlanIntensive:
		return true
	}
	return false
}
