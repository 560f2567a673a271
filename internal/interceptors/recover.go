package interceptors

import (
	"context"
	"log/slog"
	"runtime/debug"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pribylovaa/go-tracks-api/internal/pkg/log"
)

// Recover перехватывает паники в обработчиках, логирует их со стеком
// и отвечает клиенту нейтральной ошибкой codes.Internal.
// Логгер берётся из контекста (см. UnaryLoggingInterceptor), иначе base.
func Recover(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			l := log.From(ctx)
			if l == slog.Default() && base != nil {
				l = base
			}

			l.Error("panic_recovered",
				slog.String("method", info.FullMethod),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)

			err = status.Error(codes.Internal, "internal server error")
			resp = nil
		}()

		return handler(ctx, req)
	}
}
