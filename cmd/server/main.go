package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	"codesync/internal/presence"
	"codesync/internal/routers"
	"codesync/internal/session"
	"codesync/internal/utils"
)

var (
	listenAndServe = http.ListenAndServe
	exitFunc       = defaultExit
	exit           = os.Exit

	defaultRedisAddr = "redis:6379"
	defaultPort      = "5000"
)

func defaultExit(err error) {
	log.Printf("server exited: %v", err)
	exit(1)
}

func run(ctx context.Context) error {
	logger := utils.NewLogger()

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = defaultRedisAddr
	}

	coord := session.NewCoordinator(logger)

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	relay := presence.NewRelay(rdb, logger)
	coord.SetRelay(relay)
	go relay.Subscribe(ctx, coord.Hub())

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	addr := ":" + port
	logger.Info("codesync listening", "addr", addr)
	return listenAndServe(addr, routers.New(logger, coord))
}

func main() {
	if err := run(context.Background()); err != nil {
		exitFunc(err)
	}
}
