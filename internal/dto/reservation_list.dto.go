package dto

type ReservationListDTO struct {
	ID              uint     `json:"id"`
	ReservationDate string   `json:"reservation_date"`
	ReservationTime string   `json:"reservation_time"`
	Status          string   `json:"status"`
	FullName        string   `json:"full_name"`
	PhoneNumber     string   `json:"phone_number"`
	ServiceName     string   `json:"service_name"`
	ServicePrice    *float64 `json:"service_price"`
	Notes           string   `json:"notes"`
}
