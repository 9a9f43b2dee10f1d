package models

import "time"

// Appointment statuses. Once confirmed or cancelled an appointment stays
// there; only pending appointments transition.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
)

// Appointment represents a scheduling request submitted from the public site.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PreferredDate   time.Time `bson:"preferredDate" json:"preferredDate"` // calendar date at midnight UTC
	PreferredTime   string    `bson:"preferredTime" json:"preferredTime"` // one of the fixed slot labels
	Message         string    `bson:"message,omitempty" json:"message,omitempty"`
	Status          string    `bson:"status" json:"status"`
	CalendarEventID string    `bson:"calendarEventId,omitempty" json:"calendarEventId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SlotAvailability is the available-slots response payload for a single date.
type SlotAvailability struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}

// ScheduleAppointmentRequest is the public booking payload.
type ScheduleAppointmentRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferredDate"` // YYYY-MM-DD
	PreferredTime string `json:"preferredTime"`
	Message       string `json:"message"`
}
