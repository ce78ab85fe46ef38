package dto

type SignupRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PhoneStartRequest struct {
	Phone        string `json:"phone" binding:"required"`
	CaptchaToken string `json:"captchaToken" binding:"required"`
}

type PhoneVerifyRequest struct {
	Phone string `json:"phone" binding:"required"`
	Ref   string `json:"ref" binding:"required"`
	OTP   string `json:"otp" binding:"required"`
}
