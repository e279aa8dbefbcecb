package handler

import (
	"github.com/mi-ecommerce/marketplace-api/internal/core/ports"
)

func toCreateUserInput(req createUserRequest) ports.CreateUserInput {
	return ports.CreateUserInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Username:   req.Username,
		Password:   req.Password,
		Email:      req.Email,
		Role:       req.Role,
		ProfilePic: req.ProfilePic,
	}
}

func toUpdateUserInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Username:   req.Username,
		Password:   req.Password,
		Email:      req.Email,
		Role:       req.Role,
		ProfilePic: req.ProfilePic,
	}
}
