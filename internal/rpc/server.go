package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/Eventhenoob/betay-server/internal/betay"
)

func New(logger *slog.Logger, newsManager *betay.Manager) *zenrpc.Server {
	rpcService := NewNewsService(newsManager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("news", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "betay-server", nil))

	return rpcServer
}
