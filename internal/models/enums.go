package models

// PlatformType - платформа, через которую пользователь общается с системой
type PlatformType string

const (
	PlatformWhatsApp PlatformType = "whatsapp"
	PlatformTelegram PlatformType = "telegram"
	PlatformSMS      PlatformType = "sms"
	PlatformWeb      PlatformType = "web"
)

// SeverityLevel - заявленная серьёзность затопления
type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "low"
	SeverityMedium   SeverityLevel = "medium"
	SeverityHigh     SeverityLevel = "high"
	SeverityCritical SeverityLevel = "critical"
)

// Rank возвращает порядковый номер серьёзности (low < medium < high < critical).
// Неизвестные значения получают 0 и проигрывают любому известному уровню.
func (s SeverityLevel) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	}
	return 0
}

// MaxSeverity возвращает наибольшую серьёзность из набора
func MaxSeverity(levels []SeverityLevel) SeverityLevel {
	max := SeverityLow
	for _, l := range levels {
		if l.Rank() > max.Rank() {
			max = l
		}
	}
	return max
}

// VerificationStatus - статус проверки репорта
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
	VerificationFlagged  VerificationStatus = "flagged"
)

// IncidentStatus - статус инцидента
type IncidentStatus string

const (
	IncidentActive     IncidentStatus = "active"
	IncidentMonitoring IncidentStatus = "monitoring"
	IncidentResolved   IncidentStatus = "resolved"
)

// AlertLevel - уровень оповещения (от advisory к emergency)
type AlertLevel string

const (
	AlertAdvisory  AlertLevel = "advisory"
	AlertWatch     AlertLevel = "watch"
	AlertWarning   AlertLevel = "warning"
	AlertEmergency AlertLevel = "emergency"
)

// AlertLevelForSeverity - фиксированное соответствие серьёзности инцидента уровню оповещения.
// Для неизвестной серьёзности возвращается warning.
func AlertLevelForSeverity(severity SeverityLevel) AlertLevel {
	switch severity {
	case SeverityLow:
		return AlertAdvisory
	case SeverityMedium:
		return AlertWatch
	case SeverityHigh:
		return AlertWarning
	case SeverityCritical:
		return AlertEmergency
	}
	return AlertWarning
}

// AlertDeliveryStatus - агрегированный статус доставки оповещения
type AlertDeliveryStatus string

const (
	DeliveryPending AlertDeliveryStatus = "pending"
	DeliverySending AlertDeliveryStatus = "sending"
	DeliverySent    AlertDeliveryStatus = "sent"
	DeliveryFailed  AlertDeliveryStatus = "failed"
)

// VerificationType - источник проверочного сигнала
type VerificationType string

const (
	VerificationTypeAI        VerificationType = "ai"
	VerificationTypeWeather   VerificationType = "weather"
	VerificationTypeCommunity VerificationType = "community"
	VerificationTypeAdmin     VerificationType = "admin"
)

// VerificationResult - результат отдельной проверки
type VerificationResult string

const (
	ResultConfirmed VerificationResult = "confirmed"
	ResultRejected  VerificationResult = "rejected"
	ResultUncertain VerificationResult = "uncertain"
)
