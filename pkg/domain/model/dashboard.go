package model

import (
	"time"
)

// ScheduledCall is one booked call from the scheduling provider
type ScheduledCall struct {
	URI       string    `json:"uri"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// LicenseInfo reports seat usage for a provider plan
type LicenseInfo struct {
	Platform     string `json:"platform"`
	Total        int    `json:"total"`
	Used         int    `json:"used"`
	Available    int    `json:"available"`
	Percentage   int    `json:"percentage"`
	HasAvailable bool   `json:"hasAvailableLicenses"`
	PlanName     string `json:"planName,omitempty"`
}

// NewLicenseInfo derives the usage figures from total and used seats
func NewLicenseInfo(platform string, total, used int) LicenseInfo {
	available := total - used
	if available < 0 {
		available = 0
	}
	percentage := 0
	if total > 0 {
		percentage = used * 100 / total
	}
	return LicenseInfo{
		Platform:     platform,
		Total:        total,
		Used:         used,
		Available:    available,
		Percentage:   percentage,
		HasAvailable: available > 0,
	}
}

// IntegrationStatus is one provider's health as seen from the console
type IntegrationStatus struct {
	Platform  string       `json:"platform"`
	Status    string       `json:"status"` // operational | error | unconfigured
	Error     string       `json:"error,omitempty"`
	Detail    string       `json:"detail,omitempty"`
	License   *LicenseInfo `json:"license,omitempty"`
	CheckedAt time.Time    `json:"checkedAt"`
}
