package request

type SignUpRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=120"`
	Password1 string `json:"password1" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required,eqfield=Password1"`
}

type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
