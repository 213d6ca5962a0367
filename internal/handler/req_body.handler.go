package handler

type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LogInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateTodoRequest struct {
	Content string `json:"content"`
	IsDone  bool   `json:"is_done"`
}

type UpdateTodoRequest struct {
	IsDone bool `json:"is_done"`
}

type VerifyOTPRequest struct {
	OtpCode string `json:"otp_code"`
}
