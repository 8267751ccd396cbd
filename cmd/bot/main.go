package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"guildBot/internal/app/runtime"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run, err := runtime.Start(ctx, runtime.Options{})
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	log.Println("bot is running, press CTRL-C to exit")
	<-ctx.Done()

	if err := run.Stop(); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
