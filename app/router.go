// Package app wires the HTTP API around the chess engine: game sessions,
// move handling and persona commentary.
package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pramod-motupalli/Chess.IO/app/config"
)

// NewRouter builds the HTTP router.
func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	router.GET("/health", Health)
	router.GET("/personas", ListPersonas)

	router.POST("/new-game", NewGame)
	router.POST("/move", MakeMove)
	router.POST("/set-persona", SetPersona)
	router.POST("/self-play", SelfPlay)
	router.GET("/game/:gameid", GetGame)
	router.DELETE("/game/:gameid", DeleteGame)

	return router, nil
}
