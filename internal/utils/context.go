package utils

import (
	"context"

	"insurance-portal/internal/models"
)

type CtxKey string

const (
	ctxUser  CtxKey = "user"
	CtxToken CtxKey = "token"
)

func GetString(ctx context.Context, key any) (string, bool) {
	v := ctx.Value(key)
	s, ok := v.(string)
	return s, ok
}

// WithUser stores the authenticated principal on ctx.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, ctxUser, u)
}

// User returns the principal stored by WithUser, or nil.
func User(ctx context.Context) *models.User {
	u, _ := ctx.Value(ctxUser).(*models.User)
	return u
}
