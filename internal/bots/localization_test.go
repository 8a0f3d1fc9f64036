package bots

import (
	"testing"

	"github.com/shenikar/flood_watch_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderAlertMessage_SubstitutesPlaceholders(t *testing.T) {
	msg := RenderAlertMessage(models.AlertWarning, "en", "Msimbazi Valley", 4)

	assert.Contains(t, msg, "Msimbazi Valley")
	assert.Contains(t, msg, "4 reports")
	assert.NotContains(t, msg, "{location}")
	assert.NotContains(t, msg, "{report_count}")
}

func TestRenderAlertMessage_EmptyLocationFallback(t *testing.T) {
	msg := RenderAlertMessage(models.AlertAdvisory, "en", "", 1)

	assert.Contains(t, msg, "affected area")
}

func TestRenderAlertMessage_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	en := RenderAlertMessage(models.AlertEmergency, "en", "Kawe", 2)
	fr := RenderAlertMessage(models.AlertEmergency, "fr", "Kawe", 2)

	assert.Equal(t, en, fr)
}

func TestRenderAlertMessage_MissingLevelInLanguageFallsBackToEnglish(t *testing.T) {
	// В суахили нет шаблона watch - используется английский того же уровня
	msg := RenderAlertMessage(models.AlertWatch, "sw", "Kawe", 2)

	assert.Contains(t, msg, "FLOOD WATCH")
}

func TestRenderAlertMessage_SwahiliTemplate(t *testing.T) {
	msg := RenderAlertMessage(models.AlertWarning, "sw", "Kawe", 3)

	assert.Contains(t, msg, "ONYO LA MAFURIKO")
	assert.Contains(t, msg, "Kawe")
}

func TestRenderVerificationRequest_SubstitutesLocation(t *testing.T) {
	msg := RenderVerificationRequest("en", "Msimbazi Valley")

	assert.Contains(t, msg, "Msimbazi Valley")
	assert.NotContains(t, msg, "{location}")
}

func TestRenderVerificationRequest_EmptyLocationFallback(t *testing.T) {
	msg := RenderVerificationRequest("en", "")

	assert.Contains(t, msg, "your area")
}

func TestRenderVerificationRequest_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	en := RenderVerificationRequest("en", "Kawe")
	de := RenderVerificationRequest("de", "Kawe")

	assert.Equal(t, en, de)
}
