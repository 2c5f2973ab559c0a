package main

import (
	"log"

	"github.com/Rithb898/AI-Application-Assistant/internal/bootstrap"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/config"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/server"
)

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(cfg, nil)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
