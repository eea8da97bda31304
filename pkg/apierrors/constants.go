package apierrors

const (
	MsgTitleRequired      = "titleRequired"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgTaskNotFound       = "taskNotFound"
	MsgInvalidFilter      = "invalidFilter"
	MsgInvalidTheme       = "invalidTheme"
	MsgInvalidDarkMode    = "invalidDarkMode"
	MsgInvalidMonth       = "invalidMonth"
	MsgInvalidDate        = "invalidDate"
	MsgInvalidCredentials = "invalidCredentials"
	MsgInvalidAuthPayload = "invalidAuthPayload"
	MsgEmailTaken         = "emailTaken"
	MsgWeakPassword       = "weakPassword"
	MsgFailSignUp         = "failSignUp"
	MsgFailSignIn         = "failSignIn"
	MsgSavingInProgress   = "savingInProgress"
	MsgLoginRequired      = "loginRequired"
	MsgSignUpSuccess      = "signUpSuccess"
)
