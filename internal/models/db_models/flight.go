package db_models

import "time"

type Flight struct {
	BaseModel
	FlightNumber   string    `json:"flight_number"`
	Airline        string    `json:"airline"`
	Source         string    `json:"source"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"available_seats"`
}
