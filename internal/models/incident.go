package models

import (
	"time"

	"github.com/google/uuid"
)

// Incident - географический кластер подтверждённых репортов.
// Локация берётся из первого репорта кластера, а не из центроида.
type Incident struct {
	ID               uuid.UUID      `json:"id"`
	Latitude         float64        `json:"latitude"`
	Longitude        float64        `json:"longitude"`
	AffectedRadiusKm float64        `json:"affected_radius_km"`
	Severity         SeverityLevel  `json:"severity"`
	Status           IncidentStatus `json:"status"`
	ReportCount      int            `json:"report_count"`
	CreatedAt        time.Time      `json:"created_at"`
	ResolvedAt       *time.Time     `json:"resolved_at,omitempty"`
}
