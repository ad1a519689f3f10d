package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/styxx3542/ray-tracer/web/server"
)

func main() {
	// .env is optional; environment variables win over flag defaults.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env: %v", err)
	}

	defaultPort := 8080
	if raw := os.Getenv("PORT"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			defaultPort = p
		} else {
			log.Printf("ignoring invalid PORT %q", raw)
		}
	}

	port := flag.Int("port", defaultPort, "Port to serve on")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	webServer := server.NewServer(*port, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- webServer.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Printf("Error starting server: %v", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Printf("Received %v, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := webServer.Shutdown(ctx); err != nil {
			logger.Printf("Shutdown: %v", err)
			os.Exit(1)
		}
	}
}
