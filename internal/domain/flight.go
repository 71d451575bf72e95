package domain

// Airport is the code/city pair flights reference on both ends.
type Airport struct {
	Code string `json:"code"`
	City string `json:"city"`
}

// Flight is one catalog entry from the static fixture. The catalog is
// read-only; every page that renders flight details resolves against it.
type Flight struct {
	ID            string  `json:"id"`
	Airline       string  `json:"airline"`
	Logo          string  `json:"logo"`
	FlightNumber  string  `json:"flightNumber"`
	Origin        Airport `json:"origin"`
	Destination   Airport `json:"destination"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Duration      string  `json:"duration"`
	Stops         string  `json:"stops"`
	Price         int     `json:"price"`
}
