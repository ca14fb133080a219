package grpc

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/dmitrijs2005/unigate/internal/common"
	pb "github.com/dmitrijs2005/unigate/internal/proto"
	"github.com/dmitrijs2005/unigate/internal/server/access"
	"github.com/dmitrijs2005/unigate/internal/server/auth"
	"github.com/dmitrijs2005/unigate/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

var publicMethods = map[string]bool{
	pb.IdentityService_Login_FullMethodName: true,
}

func bearerToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 {
		return ""
	}
	scheme, token, ok := strings.Cut(values[0], " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}

func clientKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// accessTokenInterceptor verifies the bearer token of every non-public call
// and puts the verified claims and scope into the context. Login calls are
// throttled per client address instead.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if publicMethods[info.FullMethod] {
		if s.limiter != nil && !s.limiter.Allow(clientKey(ctx)) {
			s.metrics.RateLimited.Inc()
			s.logger.Warn(ctx, "login rate limited", "client", clientKey(ctx))
			return nil, kindError(services.KindRateLimited)
		}
		return handler(ctx, req)
	}

	token := bearerToken(ctx)
	if token == "" {
		return nil, kindError(services.KindMissingToken)
	}

	claims, scope, err := s.auth.Authenticate(ctx, token)
	if err != nil {
		s.logger.Info(ctx, "token rejected", "method", info.FullMethod, "kind", services.ErrorKind(err))
		return nil, toStatus(err)
	}

	ctx = auth.WithClaims(ctx, claims)
	ctx = access.WithScope(ctx, scope)
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "grpc call", "method", info.FullMethod,
		"code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}
