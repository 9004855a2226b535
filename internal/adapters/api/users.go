package api

import (
	"context"
	"net/http"

	"github.com/bnema/skillconnect-cli/internal/domain"
)

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := c.do(ctx, request{
		op:       "list users",
		fallback: "Failed to fetch users",
		method:   http.MethodGet,
		path:     "users",
	}, &users)
	return users, err
}

func (c *Client) GetUser(ctx context.Context, id domain.UserID) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, request{
		op:       "get user",
		fallback: "Failed to load profile",
		notFound: "User not found",
		method:   http.MethodGet,
		path:     resourcePath("users", string(id)),
	}, &user)
	return user, err
}

func (c *Client) Register(ctx context.Context, payload map[string]any) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, request{
		op:        "register user",
		fallback:  "Registration failed. Please try again.",
		method:    http.MethodPost,
		path:      "users/register",
		anonymous: true,
		body:      payload,
	}, &user)
	return user, err
}

func (c *Client) Login(ctx context.Context, credentials domain.Credentials) (domain.LoginResult, error) {
	var result domain.LoginResult
	err := c.do(ctx, request{
		op:        "login",
		fallback:  "Login failed. Please try again.",
		method:    http.MethodPost,
		path:      "users/login",
		anonymous: true,
		body:      credentials,
	}, &result)
	return result, err
}

func (c *Client) UpdateUser(ctx context.Context, id domain.UserID, payload map[string]any) (domain.User, error) {
	var user domain.User
	err := c.do(ctx, request{
		op:       "update user",
		fallback: "Failed to update profile",
		notFound: "User not found",
		method:   http.MethodPut,
		path:     resourcePath("users", string(id)),
		body:     payload,
	}, &user)
	return user, err
}

func (c *Client) DeleteUser(ctx context.Context, id domain.UserID) error {
	return c.do(ctx, request{
		op:       "delete user",
		fallback: "Failed to delete account",
		notFound: "User not found",
		method:   http.MethodDelete,
		path:     resourcePath("users", string(id)),
	}, nil)
}
