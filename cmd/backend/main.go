package main

import (
	"log"

	"backend/internal/api"

	_ "backend/docs"
)

// @title Railway Ticket Office API
// @version 1.0
// @description Бэк-офис железнодорожной кассы: пассажиры, кассиры, рейсы, продажа билетов и отчеты

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
