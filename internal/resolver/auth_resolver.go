package resolver

import (
	api_types "taxdash/api-types"

	"github.com/google/uuid"
)

func (r resolverHandler) SignUp(req api_types.SignUpRequest) (*api_types.AuthResponse, error) {
	token, err := r.AuthService.SignUp(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return &api_types.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (r resolverHandler) LogIn(req api_types.LogInRequest) (*api_types.AuthResponse, error) {
	token, err := r.AuthService.LogIn(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return &api_types.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (r resolverHandler) GetMe(userID uuid.UUID) (*api_types.GetMeResponse, error) {
	user, err := r.AuthService.GetUser(userID)
	if err != nil {
		return nil, err
	}
	return &api_types.GetMeResponse{
		UserID: user.UserID.String(),
		Email:  user.Email,
	}, nil
}
