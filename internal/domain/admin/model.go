package admin

import "context"

// Stats is the platform overview shown on the admin console
type Stats struct {
	TotalUsers           int   `json:"totalUsers"`
	ActiveProviders      int   `json:"activeProviders"`
	PendingVerifications int   `json:"pendingVerifications"`
	MonthlyBookings      int   `json:"monthlyBookings"`
	TotalRevenue         int64 `json:"totalRevenue"`
	DisputesOpen         int   `json:"disputesOpen"`
}

// VerificationStatus is the review state of a provider application
type VerificationStatus string

const (
	VerificationUnderReview VerificationStatus = "under_review"
	VerificationPending     VerificationStatus = "pending"
)

// PendingVerification is a provider application awaiting review
type PendingVerification struct {
	ID             string             `json:"id"`
	ProviderName   string             `json:"providerName"`
	Organization   string             `json:"organization"`
	Location       string             `json:"location"`
	SubmittedDate  string             `json:"submittedDate"`
	DocumentsCount int                `json:"documentsCount"`
	Status         VerificationStatus `json:"status"`
}

// ActivityType classifies entries in the admin activity feed
type ActivityType string

const (
	ActivityProviderApproved ActivityType = "provider_approved"
	ActivityDisputeResolved  ActivityType = "dispute_resolved"
	ActivitySanctionApplied  ActivityType = "sanction_applied"
)

// Activity is one entry in the admin activity feed
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Timestamp   string       `json:"timestamp"`
	Actor       string       `json:"actor"`
}

// Repository defines read access to the admin console datasets
type Repository interface {
	Stats(ctx context.Context) (*Stats, error)
	PendingVerifications(ctx context.Context) ([]*PendingVerification, error)
	RecentActivity(ctx context.Context) ([]*Activity, error)
}
