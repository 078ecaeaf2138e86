package requests

type CreateSubscriptionRequest struct {
	Plan        string `json:"plan" validate:"required,subscription_plan"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}
