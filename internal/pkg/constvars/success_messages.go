package constvars

const (
	ResponseSuccess = "success"

	SuccessRegister             = "successfully registered"
	SuccessLogin                = "successfully logged in"
	SuccessLogout               = "successfully logged out"
	SuccessSubmitIntakeStep     = "successfully submitted questionnaire step"
	SuccessIntakeBack           = "successfully moved to the previous step"
	SuccessIntakeReset          = "successfully reset the questionnaire"
	SuccessGetIntakeProgress    = "successfully fetched questionnaire progress"
	SuccessGetMatchingResults   = "successfully fetched matching results"
	SuccessGetPractitioners     = "successfully fetched practitioners"
	SuccessGetPractitioner      = "successfully fetched practitioner"
	SuccessGetAvailability      = "successfully fetched availability"
	SuccessCreateAppointment    = "successfully booked appointment"
	SuccessGetAppointments      = "successfully fetched appointments"
	SuccessCancelAppointment    = "successfully cancelled appointment"
	SuccessCompleteAppointment  = "successfully completed appointment"
	SuccessCreateSubscription   = "successfully subscribed to plan"
)
