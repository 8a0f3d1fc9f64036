package models

import (
	"time"

	"github.com/google/uuid"
)

// Verification - запись журнала об одной проверке репорта.
// Каждый сигнал (ai/weather/community/admin) логируется отдельной строкой.
type Verification struct {
	ID              uuid.UUID          `json:"id"`
	ReportID        uuid.UUID          `json:"report_id"`
	VerifierUserID  *uuid.UUID         `json:"verifier_user_id,omitempty"`
	Type            VerificationType   `json:"type"`
	Result          VerificationResult `json:"result"`
	ConfidenceScore float64            `json:"confidence_score"`
	Notes           string             `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}
