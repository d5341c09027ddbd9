package main

import (
	"context"
	"log"
	"os"

	"github.com/svarma-dev/certfolio/internal/buildinfo"
	"github.com/svarma-dev/certfolio/internal/cli"
	"github.com/svarma-dev/certfolio/internal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
