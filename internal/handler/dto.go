package handler

import "github.com/msomdec/job-portal/internal/domain"

// UserDTO is the JSON representation of a registered user. The password is
// never part of a response.
type UserDTO struct {
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Role     string `json:"role"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		Email:    u.Email,
		Fullname: u.Fullname,
		Role:     u.Role,
	}
}

// registerRequest is the body of POST /api/users/register.
type registerRequest struct {
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

func (req registerRequest) toUser() *domain.User {
	return &domain.User{
		Email:    req.Email,
		Fullname: req.Fullname,
		Role:     req.Role,
		Password: req.Password,
	}
}
