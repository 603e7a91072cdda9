package main

import (
	"context"
	"log"

	"github.com/Arch-4ng3l/FamilyCalendar/backend/config"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	jwtKey = []byte(cfg.JWTSecret)

	ctx := context.Background()

	store, err := NewFirestoreStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	googleCalendar, err := NewGoogleCalendar(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	api := NewAPI(store, googleCalendar)

	r := gin.Default()

	public := r.Group("/api")
	{
		public.POST("/register", api.Register)
		public.POST("/login", api.Login)
	}

	authed := r.Group("/api", AuthRequired())
	{
		authed.GET("/family", api.FetchFamilyData)
		authed.POST("/family", api.CreateFamily)
		authed.POST("/events", api.CreateFamilyEvent)
		authed.DELETE("/events/:id", api.RemoveFamilyEvent)
	}

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
