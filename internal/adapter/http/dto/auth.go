package dto

type CredentialsRequest struct {
	Email    string `json:"email" form:"email" binding:"required,max=255"`
	Password string `json:"password" form:"password" binding:"required,max=72"`
}

type LoginHint struct {
	Message string `json:"message"`
	SignUp  string `json:"sign_up"`
	Login   string `json:"login"`
}

type SignUpResponse struct {
	User     UserItem `json:"user"`
	Redirect string   `json:"redirect"`
}

type SignUpSuccess struct {
	Message string `json:"message"`
	Login   string `json:"login"`
}

type LoginResponse struct {
	User     UserItem `json:"user"`
	Redirect string   `json:"redirect"`
}
