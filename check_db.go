package main

import (
	"fmt"
	"log"

	"backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := "host=localhost user=postgres password=password dbname=railway_db port=5432 sslmode=disable TimeZone=Europe/Moscow"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var trips []ds.Trip
	err = db.Order("departure").Find(&trips).Error
	if err != nil {
		log.Fatal("Failed to get trips:", err)
	}

	fmt.Println("Trips in database:")
	for _, trip := range trips {
		imageURL := "NULL"
		if trip.ImageURL != nil {
			imageURL = *trip.ImageURL
		}
		fmt.Printf("ID: %d, Route: %s, Departure: %s, ImageURL: %s\n",
			trip.ID, trip.Route(), trip.Departure.Format("2006-01-02 15:04"), imageURL)
	}
}
