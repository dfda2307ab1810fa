package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kush-Singh-26/modserve/internal/mimetypes"
	"github.com/Kush-Singh-26/modserve/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Keep the platform registry in line with the override table for
	// lookups that bypass it
	if err := mimetypes.RegisterFallbacks(); err != nil {
		log.Fatal(err)
	}

	if err := server.Run(ctx, server.DefaultConfig()); err != nil {
		log.Fatal(err)
	}
}
