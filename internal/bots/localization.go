package bots

import (
	"fmt"
	"strings"

	"github.com/shenikar/flood_watch_system/internal/models"
)

// Шаблоны оповещений по языкам и уровням. Английский набор полный,
// остальные языки могут быть частичными - недостающий уровень берётся из английского.
var alertTemplates = map[string]map[models.AlertLevel]string{
	"en": {
		models.AlertAdvisory:  "🌊 FLOOD ADVISORY\n\nFlood reported in {location}. {report_count} reports received. Water levels rising. Stay alert and monitor conditions.",
		models.AlertWatch:     "⚠️ FLOOD WATCH\n\nFLOODING IN PROGRESS near {location}. {report_count} confirmed reports. Avoid the area. Prepare for possible evacuation.",
		models.AlertWarning:   "🚨 FLOOD WARNING\n\nSIGNIFICANT FLOODING at {location}. {report_count} reports. DANGEROUS CONDITIONS. Avoid area immediately. Move to higher ground if nearby.",
		models.AlertEmergency: "🆘 FLOOD EMERGENCY\n\nCRITICAL FLOOD SITUATION at {location}. LIFE-THREATENING CONDITIONS. EVACUATE IMMEDIATELY if in area. Seek higher ground NOW. Emergency services notified.",
	},
	"sw": {
		models.AlertAdvisory:  "🌊 TAHADHARI YA MAFURIKO\n\nMafuriko yameripotiwa {location}. Ripoti {report_count} zimepokelewa. Maji yanaongezeka. Kuwa macho.",
		models.AlertWarning:   "🚨 ONYO LA MAFURIKO\n\nMAFURIKO MAKUBWA {location}. Ripoti {report_count}. HALI HATARI. Epuka eneo mara moja.",
		models.AlertEmergency: "🆘 DHARURA YA MAFURIKO\n\nHALI YA HATARI {location}. HAMISHA MARA MOJA. Nenda mahali pa juu SASA.",
	},
}

// Шаблоны запросов верификации сообществом
var verificationRequestTemplates = map[string]string{
	"en": "⚠️ Verification needed: is there flooding at {location}? Reply YES or NO to help your community.",
	"sw": "⚠️ Uthibitisho unahitajika: kuna mafuriko {location}? Jibu NDIYO au HAPANA kusaidia jamii yako.",
}

// RenderAlertMessage собирает текст оповещения на нужном языке.
// Для языка без шаблона уровня используется английский шаблон того же уровня;
// для неизвестного уровня - английский warning.
func RenderAlertMessage(level models.AlertLevel, language, location string, reportCount int) string {
	if location == "" {
		location = "affected area"
	}

	byLevel, ok := alertTemplates[language]
	if !ok {
		byLevel = alertTemplates["en"]
	}
	template, ok := byLevel[level]
	if !ok {
		template, ok = alertTemplates["en"][level]
		if !ok {
			template = alertTemplates["en"][models.AlertWarning]
		}
	}

	msg := strings.ReplaceAll(template, "{location}", location)
	msg = strings.ReplaceAll(msg, "{report_count}", fmt.Sprintf("%d", reportCount))
	return msg
}

// RenderVerificationRequest собирает текст запроса подтверждения для соседей
func RenderVerificationRequest(language, location string) string {
	if location == "" {
		location = "your area"
	}
	template, ok := verificationRequestTemplates[language]
	if !ok {
		template = verificationRequestTemplates["en"]
	}
	return strings.ReplaceAll(template, "{location}", location)
}
