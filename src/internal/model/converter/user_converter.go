package converter

import (
	"rider-client/src/internal/entity"
	"rider-client/src/internal/model"
)

func LoginToSession(res *model.LoginUserResponse) *entity.RiderSession {
	name := res.FullName
	if name == "" {
		name = res.UserName
	}
	return &entity.RiderSession{
		UserID:      res.UserID.String(),
		DisplayName: name,
		PhoneNumber: res.PhoneNumber,
		Email:       res.Email,
		AuthToken:   res.Token,
	}
}

func SessionToResponse(session *entity.RiderSession) *model.SessionResponse {
	if session == nil {
		return &model.SessionResponse{}
	}
	return &model.SessionResponse{
		UserID:        session.UserID,
		DisplayName:   session.DisplayName,
		PhoneNumber:   session.PhoneNumber,
		Email:         session.Email,
		Authenticated: true,
	}
}
