package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shenikar/flood_watch_system/internal/config"
	"github.com/sirupsen/logrus"
)

// Conditions - текущая погода в точке, приведённая к внутреннему виду
type Conditions struct {
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	Clouds      int     `json:"clouds"`
	Rainfall1h  float64 `json:"rainfall_1h"`
	Rainfall3h  float64 `json:"rainfall_3h"`
	WeatherMain string  `json:"weather_main"`
	WindSpeed   float64 `json:"wind_speed"`
	Alerts      []Alert `json:"alerts,omitempty"`
}

// Alert - активное погодное предупреждение в районе точки
type Alert struct {
	Event       string `json:"event"`
	Description string `json:"description,omitempty"`
}

// Client - клиент OpenWeatherMap
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		apiKey:  cfg.WeatherAPIKey,
		baseURL: cfg.WeatherBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.WeatherTimeout,
		},
		logger: logger,
	}
}

// ответ /weather в формате OpenWeatherMap
type currentWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
		Pressure int     `json:"pressure"`
	} `json:"main"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Rain struct {
		OneH   float64 `json:"1h"`
		ThreeH float64 `json:"3h"`
	} `json:"rain"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type oneCallResponse struct {
	Alerts []struct {
		Event       string `json:"event"`
		Description string `json:"description"`
	} `json:"alerts"`
}

// CurrentConditions возвращает текущую погоду и активные предупреждения в точке.
// Ошибка недоступности предупреждений не фатальна - возвращаются условия без них.
func (c *Client) CurrentConditions(ctx context.Context, lat, lon float64) (*Conditions, error) {
	var raw currentWeatherResponse
	if err := c.get(ctx, "/weather", lat, lon, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch current weather: %w", err)
	}

	conditions := &Conditions{
		Temperature: raw.Main.Temp,
		Humidity:    raw.Main.Humidity,
		Pressure:    raw.Main.Pressure,
		Clouds:      raw.Clouds.All,
		Rainfall1h:  raw.Rain.OneH,
		Rainfall3h:  raw.Rain.ThreeH,
		WindSpeed:   raw.Wind.Speed,
	}
	if len(raw.Weather) > 0 {
		conditions.WeatherMain = raw.Weather[0].Main
	}

	var oneCall oneCallResponse
	if err := c.get(ctx, "/onecall", lat, lon, map[string]string{"exclude": "minutely,hourly,daily"}, &oneCall); err != nil {
		c.logger.WithError(err).Debug("Weather alerts unavailable, continuing without them")
	} else {
		for _, a := range oneCall.Alerts {
			conditions.Alerts = append(conditions.Alerts, Alert{Event: a.Event, Description: a.Description})
		}
	}

	return conditions, nil
}

func (c *Client) get(ctx context.Context, path string, lat, lon float64, extra map[string]string, out any) error {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	for k, v := range extra {
		params.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode weather response: %w", err)
	}
	return nil
}
