package main

import (
	"context"
	"log"

	"github.com/gradient-edu/gradient-cli/internal/client/cli"
	"github.com/gradient-edu/gradient-cli/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
