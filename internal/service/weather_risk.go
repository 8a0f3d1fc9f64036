package service

import (
	"strings"

	"github.com/shenikar/flood_watch_system/internal/integrations/weather"
	"github.com/shenikar/flood_watch_system/internal/models"
)

// Ожидаемый риск затопления для каждого уровня серьёзности репорта.
var expectedRiskBySeverity = map[models.SeverityLevel]float64{
	models.SeverityLow:      0.2,
	models.SeverityMedium:   0.4,
	models.SeverityHigh:     0.6,
	models.SeverityCritical: 0.8,
}

// floodRiskScore оценивает риск затопления [0..1] по текущей погоде.
func floodRiskScore(c *weather.Conditions) float64 {
	score := 0.0

	switch {
	case c.Rainfall1h > 50:
		score += 0.5
	case c.Rainfall1h > 20:
		score += 0.3
	case c.Rainfall1h > 10:
		score += 0.2
	case c.Rainfall1h > 5:
		score += 0.1
	}

	switch {
	case c.Humidity > 90:
		score += 0.2
	case c.Humidity > 80:
		score += 0.1
	}

	if c.Clouds > 80 {
		score += 0.1
	}

	if hasFloodAlert(c.Alerts) {
		score += 0.2
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func hasFloodAlert(alerts []weather.Alert) bool {
	for _, a := range alerts {
		if strings.Contains(strings.ToLower(a.Event), "flood") {
			return true
		}
	}
	return false
}

// correlationConfidence сравнивает фактический риск с ожидаемым для
// заявленной серьёзности: чем ближе, тем выше уверенность сигнала.
func correlationConfidence(risk float64, severity models.SeverityLevel) float64 {
	expected, ok := expectedRiskBySeverity[severity]
	if !ok {
		expected = 0.5
	}
	diff := risk - expected
	if diff < 0 {
		diff = -diff
	}
	conf := 1.0 - diff
	if conf < 0 {
		conf = 0
	}
	return conf
}
