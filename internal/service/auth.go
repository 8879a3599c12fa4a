package service

import (
	"context"
	"fmt"
	"strings"

	"connectrpc.com/connect"
)

// AccessTokenInterceptor rejects requests whose bearer token is not the configured one. An empty
// token lets everything through.
type AccessTokenInterceptor struct {
	token string
}

func NewAccessTokenInterceptor(token string) AccessTokenInterceptor {
	return AccessTokenInterceptor{token: token}
}

func (i AccessTokenInterceptor) verify(authHeader string) error {
	if i.token == "" {
		return nil
	}
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token != i.token {
		return connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("Unauthorized"))
	}
	return nil
}

func (i AccessTokenInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		err := i.verify(req.Header().Get("Authorization"))
		if err != nil {
			return nil, err
		}
		return next(ctx, req)
	}
}

func (i AccessTokenInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		err := i.verify(conn.RequestHeader().Get("Authorization"))
		if err != nil {
			return err
		}
		return next(ctx, conn)
	}
}

func (i AccessTokenInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}
