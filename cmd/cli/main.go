package main

import (
	"context"
	"log"
	"os"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/buildinfo"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/cli"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/config"
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
