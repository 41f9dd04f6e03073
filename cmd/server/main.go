package main

import (
	"context"
	"log"
	"os"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/buildinfo"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/config"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/server"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
