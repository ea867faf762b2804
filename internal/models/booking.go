package models

import "time"

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	Date string `gorm:"column:booking_date;size:10;not null;uniqueIndex:idx_bookings_date_slot" json:"date"`
	// size must track booking.MaxLabelLen
	Slot string `gorm:"column:slot_label;size:32;not null;uniqueIndex:idx_bookings_date_slot" json:"slot"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	// UPI transaction reference as typed by the customer; never verified here.
	UTR              string `gorm:"size:64;not null" json:"utr"`
	PaymentConfirmed bool   `json:"payment_confirmed"`

	CreatedAt time.Time `json:"created_at"`
}
