package entity

import "net/http"

type BookingStatus int

const BookingStatusSuccess BookingStatus = http.StatusOK

// BookingResult is returned for a completed purchase. It is not stored anywhere.
type BookingResult struct {
	Status  BookingStatus `json:"status"`
	Message string        `json:"message"`
}
