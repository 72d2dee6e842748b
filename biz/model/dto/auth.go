package dto

type LoginReq struct {
	Email    string `json:"email" validate:"required,max=191"`
	Password string `json:"password" validate:"required,max=128"`
}

type LoginResp struct {
	AccessToken string   `json:"access_token"`
	ExpiresAt   int64    `json:"expires_at"`
	Mode        string   `json:"mode"`
	User        Identity `json:"user"`
}

type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LogoutReq struct{}

type LogoutResp struct{}
