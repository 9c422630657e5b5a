package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"trips/entity"
)

type UsersClient struct {
	gateway *Gateway
}

func NewUsersClient(gateway *Gateway) UsersClient {
	return UsersClient{
		gateway: gateway,
	}
}

type RegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	ContactNumber string `json:"contact_number"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

func (c UsersClient) Register(ctx context.Context, req RegisterRequest) (entity.User, error) {
	var user entity.User
	if err := c.gateway.do(ctx, http.MethodPost, "/api/users/register", req, &user); err != nil {
		return entity.User{}, fmt.Errorf("registering user: %w", err)
	}

	return user, nil
}

func (c UsersClient) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Email:    email,
		Password: password,
	}

	var res LoginResponse
	if err := c.gateway.do(ctx, http.MethodPost, "/api/users/login", req, &res); err != nil {
		return LoginResponse{}, fmt.Errorf("logging in: %w", err)
	}

	return res, nil
}

func (c UsersClient) CurrentUser(ctx context.Context) (entity.User, error) {
	var user entity.User
	if err := c.gateway.do(ctx, http.MethodGet, "/api/users/me", nil, &user); err != nil {
		return entity.User{}, fmt.Errorf("getting current user: %w", err)
	}

	return user, nil
}

type UpdateProfileRequest struct {
	Name          string `json:"name"`
	ContactNumber string `json:"contact_number"`
}

func (c UsersClient) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (entity.User, error) {
	var user entity.User
	if err := c.gateway.do(ctx, http.MethodPut, "/api/users/me", req, &user); err != nil {
		return entity.User{}, fmt.Errorf("updating profile: %w", err)
	}

	return user, nil
}

// List searches users by name and role. Empty filters list everyone.
func (c UsersClient) List(ctx context.Context, name, role string) ([]entity.User, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}
	if role != "" {
		query.Set("role", role)
	}

	path := "/api/users"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var users []entity.User
	if err := c.gateway.do(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return users, nil
}
