package models

import (
	"time"

	"github.com/google/uuid"
)

// Report - единичное сообщение жителя о затоплении.
// Создаётся один раз и не удаляется; меняются только поля верификации.
type Report struct {
	ID                     uuid.UUID          `json:"id"`
	UserID                 uuid.UUID          `json:"user_id"`
	Latitude               float64            `json:"latitude"`
	Longitude              float64            `json:"longitude"`
	Address                string             `json:"address,omitempty"`
	Severity               SeverityLevel      `json:"severity"`
	Description            string             `json:"description,omitempty"`
	WaterDepthCm           int                `json:"water_depth_cm,omitempty"`
	ImageURLs              []string           `json:"image_urls,omitempty"`
	VerificationStatus     VerificationStatus `json:"verification_status"`
	AIConfidenceScore      float64            `json:"ai_confidence_score"`
	CommunityVerifications int                `json:"community_verifications"`
	CreatedAt              time.Time          `json:"created_at"`
	VerifiedAt             *time.Time         `json:"verified_at,omitempty"`
}
