package entity

// RiderSession is the identity of the logged-in rider.
type RiderSession struct {
	UserID      string `json:"userId" validate:"required,max=100"`
	DisplayName string `json:"displayName" validate:"max=200"`
	PhoneNumber string `json:"phoneNumber" validate:"max=50"`
	Email       string `json:"email" validate:"omitempty,email"`
	AuthToken   string `json:"authToken,omitempty"`
}
