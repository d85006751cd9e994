package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/romashorodok/meeting-authority/internal/meeting"
	"github.com/romashorodok/meeting-authority/internal/registry"
	globalprotocol "github.com/romashorodok/meeting-authority/pkg/protocol"
	"github.com/romashorodok/meeting-authority/pkg/service"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	fx.New(
		fx.Provide(
			registry.NewClient,
			meeting.NewService,

			globalprotocol.AsHttpController(meeting.NewMeetingController),
		),

		service.LoggerModule,
		service.DatabaseModule,
		service.LiveKitModule,
		service.HttpModule,
	).Run()
}
