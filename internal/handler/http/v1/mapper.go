package v1

import (
	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/shenikar/flood_watch_system/internal/service"
)

// DTOToReportModel преобразует DTO подачи репорта в доменную модель
func DTOToReportModel(dto CreateReportRequest) *models.Report {
	return &models.Report{
		UserID:       dto.UserID,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		Address:      dto.Address,
		Severity:     models.SeverityLevel(dto.Severity),
		Description:  dto.Description,
		WaterDepthCm: dto.WaterDepthCm,
		ImageURLs:    dto.ImageURLs,
	}
}

// DTOToUserModel преобразует DTO регистрации в доменную модель
func DTOToUserModel(dto RegisterUserRequest) *models.User {
	return &models.User{
		PhoneNumber:     dto.PhoneNumber,
		Platform:        models.PlatformType(dto.Platform),
		PlatformID:      dto.PlatformID,
		LanguageCode:    dto.LanguageCode,
		Latitude:        dto.Latitude,
		Longitude:       dto.Longitude,
		AlertSubscribed: true,
		AlertRadiusKm:   dto.AlertRadiusKm,
	}
}

// ModelToReportResponse преобразует доменную модель в DTO для ответа
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:                     model.ID,
		UserID:                 model.UserID,
		Latitude:               model.Latitude,
		Longitude:              model.Longitude,
		Address:                model.Address,
		Severity:               string(model.Severity),
		Description:            model.Description,
		WaterDepthCm:           model.WaterDepthCm,
		ImageURLs:              model.ImageURLs,
		VerificationStatus:     string(model.VerificationStatus),
		AIConfidenceScore:      model.AIConfidenceScore,
		CommunityVerifications: model.CommunityVerifications,
		CreatedAt:              model.CreatedAt,
		VerifiedAt:             model.VerifiedAt,
	}
}

// ModelsToReportResponses преобразует слайс моделей в слайс DTO
func ModelsToReportResponses(reports []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, model := range reports {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}

// SubmissionToResponse собирает DTO ответа на подачу репорта
func SubmissionToResponse(result *service.SubmissionResult) *SubmitReportResponse {
	resp := &SubmitReportResponse{
		Report:            ModelToReportResponse(result.Report),
		CommunityRequests: result.CommunityRequests,
	}
	if result.Outcome != nil {
		resp.VerificationScore = result.Outcome.Score
	}
	if result.Incident != nil {
		resp.IncidentID = &result.Incident.ID
	}
	if result.Alert != nil {
		resp.AlertID = &result.Alert.ID
	}
	return resp
}

// ModelToVerificationResponse преобразует запись журнала проверок в DTO
func ModelToVerificationResponse(model *models.Verification) *VerificationResponse {
	return &VerificationResponse{
		ID:              model.ID,
		ReportID:        model.ReportID,
		VerifierUserID:  model.VerifierUserID,
		Type:            string(model.Type),
		Result:          string(model.Result),
		ConfidenceScore: model.ConfidenceScore,
		Notes:           model.Notes,
		CreatedAt:       model.CreatedAt,
	}
}

// ModelsToVerificationResponses преобразует слайс записей журнала в слайс DTO
func ModelsToVerificationResponses(verifications []*models.Verification) []*VerificationResponse {
	responses := make([]*VerificationResponse, len(verifications))
	for i, model := range verifications {
		responses[i] = ModelToVerificationResponse(model)
	}
	return responses
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:               model.ID,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		AffectedRadiusKm: model.AffectedRadiusKm,
		Severity:         string(model.Severity),
		Status:           string(model.Status),
		ReportCount:      model.ReportCount,
		CreatedAt:        model.CreatedAt,
		ResolvedAt:       model.ResolvedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:               model.ID,
		IncidentID:       model.IncidentID,
		Level:            string(model.Level),
		Message:          model.Message,
		AffectedRadiusKm: model.AffectedRadiusKm,
		RecipientsCount:  model.RecipientsCount,
		DeliveryStatus:   string(model.DeliveryStatus),
		CreatedAt:        model.CreatedAt,
		SentAt:           model.SentAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(alerts []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, model := range alerts {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

// StatsToResponse преобразует итоги рассылки в DTO
func StatsToResponse(stats *models.DeliveryStats) *DeliveryStatsResponse {
	return &DeliveryStatsResponse{
		Total:     stats.Total,
		WhatsApp:  stats.WhatsApp,
		Telegram:  stats.Telegram,
		Failed:    stats.Failed,
		Delivered: stats.Delivered,
	}
}

// ModelToUserResponse преобразует доменную модель в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:               model.ID,
		PhoneNumber:      model.PhoneNumber,
		Platform:         string(model.Platform),
		PlatformID:       model.PlatformID,
		LanguageCode:     model.LanguageCode,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		AlertSubscribed:  model.AlertSubscribed,
		AlertRadiusKm:    model.AlertRadiusKm,
		CredibilityScore: model.CredibilityScore,
		CreatedAt:        model.CreatedAt,
	}
}
