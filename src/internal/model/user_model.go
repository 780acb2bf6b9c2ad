package model

type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=200"`
	Password string `json:"password" validate:"required,max=100"`
}

type LoginUserResponse struct {
	UserID      FlexString `json:"userId" validate:"required"`
	FullName    string     `json:"fullName"`
	UserName    string     `json:"userName"`
	PhoneNumber string     `json:"phoneNumber"`
	Email       string     `json:"email"`
	Token       string     `json:"token"`
}

type SessionResponse struct {
	UserID        string `json:"userId"`
	DisplayName   string `json:"displayName"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	Authenticated bool   `json:"authenticated"`
}
