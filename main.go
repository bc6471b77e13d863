package main

import (
	"context"
	"os/signal"
	"syscall"

	"simai/cmd"
	"simai/infra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	loadingEnv := infra.NewConfig()
	container := infra.NewContainerDI(ctx, loadingEnv)
	defer container.Close()

	cmd.StartAPI(ctx, container)
}
