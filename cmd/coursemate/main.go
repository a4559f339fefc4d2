package main

import (
	"context"
	"log"
	"os"

	"github.com/coursemate/coursemate/internal/buildinfo"
	"github.com/coursemate/coursemate/internal/cli"
	"github.com/coursemate/coursemate/internal/config"
	"github.com/coursemate/coursemate/internal/logging"
)

func main() {

	buildinfo.Print(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
