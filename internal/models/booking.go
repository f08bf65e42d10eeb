package models

import "time"

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserName     string `gorm:"size:100" json:"user_name"`
	MobileNumber string `gorm:"size:20" json:"mobile_number"`
	FullAddress  string `gorm:"size:255" json:"full_address"`
	Landmark     string `gorm:"size:255" json:"landmark"`
	Pincode      string `gorm:"size:10" json:"pincode"`

	CategoryID   *string `gorm:"type:uuid" json:"category_id"`
	IssueID      *string `gorm:"type:uuid" json:"issue_id"`
	TechnicianID *string `gorm:"type:uuid" json:"technician_id"`

	Status            string `gorm:"size:20;default:'pending'" json:"status"`
	PreferredTimeSlot string `gorm:"size:50" json:"preferred_time_slot"`

	MediaURL          string `gorm:"size:500" json:"media_url"`
	SecondaryMediaURL string `gorm:"size:500" json:"secondary_media_url"`
	MapURL            string `gorm:"size:500" json:"map_url"`

	OrderID      string `gorm:"size:50" json:"order_id"`
	Note         string `gorm:"size:500" json:"note"`
	ReferralCode string `gorm:"size:20" json:"referral_code"`

	TotalEstimatedPrice float64 `json:"total_estimated_price"`
	NetInspectionFee    float64 `json:"net_inspection_fee"`
	FinalAmountPaid     float64 `json:"final_amount_paid"`
	FinalAmountToBePaid float64 `json:"final_amount_to_be_paid"`
	WalletUsedAmount    float64 `json:"wallet_used_amount"`

	PaymentStatus      string `gorm:"size:20;default:'unpaid'" json:"payment_status"`
	PaymentMethod      string `gorm:"size:20" json:"payment_method"`
	CompletionCode     string `gorm:"size:10" json:"completion_code"`
	CompletionCodeUsed bool   `gorm:"default:false" json:"completion_code_used"`

	PreferredServiceDate string `gorm:"size:20" json:"preferred_service_date"`

	AssignedAt  *time.Time `json:"assigned_at"`
	AcceptedAt  *time.Time `json:"accepted_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Upstream schema uses a singular table name for bookings.
func (Booking) TableName() string { return "booking" }

type BookingStatus string

const (
	BookingPending     BookingStatus = "pending"
	BookingAssigned    BookingStatus = "assigned"
	BookingAccepted    BookingStatus = "accepted"
	BookingCompleted   BookingStatus = "completed"
	BookingCancelled   BookingStatus = "cancelled"
	BookingJobRejected BookingStatus = "job_rejected"
)
