// Package auth provides the identity backend capability: the interface the
// workflow core consumes, a local implementation, and a degrading wrapper.
package auth

import (
	"context"
	"fmt"
	"log"

	"github.com/titanhire/titanhire/internal/types"
)

// Service is the identity backend capability. All methods may fail;
// callers must never crash on failure (see WithFallback).
type Service interface {
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
	Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*types.User, error)
	UpdateProfile(ctx context.Context, req *types.UpdateProfileRequest) (*types.User, error)
}

// Error indicates an identity backend failure surfaced to the user (on the
// login form) or degraded to a placeholder elsewhere.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// PlaceholderUser is the record shown when a profile fetch fails; the
// session keeps working instead of blocking on the identity backend.
func PlaceholderUser() *types.User {
	return &types.User{
		Name:  "User",
		Email: "user@example.com",
		Role:  "Team Member",
	}
}

// fallback degrades profile reads and updates to the placeholder user and
// swallows logout failures. Login and register errors pass through so the
// login form can display them.
type fallback struct {
	inner Service
}

// WithFallback wraps inner with the degradation policy above.
func WithFallback(inner Service) Service {
	return &fallback{inner: inner}
}

func (f *fallback) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	return f.inner.Login(ctx, req)
}

func (f *fallback) Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error) {
	return f.inner.Register(ctx, req)
}

func (f *fallback) Logout(ctx context.Context) error {
	if err := f.inner.Logout(ctx); err != nil {
		log.Printf("Error logging out: %v", err)
	}
	return nil
}

func (f *fallback) CurrentUser(ctx context.Context) (*types.User, error) {
	user, err := f.inner.CurrentUser(ctx)
	if err != nil {
		log.Printf("Error loading user data: %v", err)
		return PlaceholderUser(), nil
	}
	if user == nil {
		return PlaceholderUser(), nil
	}
	return user, nil
}

func (f *fallback) UpdateProfile(ctx context.Context, req *types.UpdateProfileRequest) (*types.User, error) {
	user, err := f.inner.UpdateProfile(ctx, req)
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		return PlaceholderUser(), nil
	}
	return user, nil
}
