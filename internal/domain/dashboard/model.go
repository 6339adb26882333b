package dashboard

// AppointmentType distinguishes virtual and in-person visits
type AppointmentType string

const (
	AppointmentVirtual  AppointmentType = "virtual"
	AppointmentInPerson AppointmentType = "in-person"
)

// AppointmentStatus is the lifecycle state of a booked appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is an upcoming consultation shown on the patient dashboard
type Appointment struct {
	ID            string            `json:"id"`
	ProviderName  string            `json:"providerName"`
	Specialty     string            `json:"specialty"`
	Procedure     string            `json:"procedure"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	Type          AppointmentType   `json:"type"`
	Location      string            `json:"location"`
	Status        AppointmentStatus `json:"status"`
	ProviderImage string            `json:"providerImage"`
}

// Message is a conversation preview shown on the patient dashboard
type Message struct {
	ID            string `json:"id"`
	ProviderName  string `json:"providerName"`
	LastMessage   string `json:"lastMessage"`
	Timestamp     string `json:"timestamp"`
	Unread        bool   `json:"unread"`
	ProviderImage string `json:"providerImage"`
}

// BookingRecord is a past booking shown in the history tab
type BookingRecord struct {
	ID           string            `json:"id"`
	ProviderName string            `json:"providerName"`
	Procedure    string            `json:"procedure"`
	Date         string            `json:"date"`
	Status       AppointmentStatus `json:"status"`
	Amount       int64             `json:"amount"`
	CanReview    bool              `json:"canReview"`
}
