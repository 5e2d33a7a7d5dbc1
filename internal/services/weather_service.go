package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"golfpoi/internal/models/response_models"
	mem "golfpoi/pkg/memcache"
)

// WeatherServiceInterface decorates a located course page with current
// conditions. It is best-effort only: every failure degrades to a nil
// report, never to an error the page would trip over.
type WeatherServiceInterface interface {
	Fetch(ctx context.Context, longitude, latitude float64) *response_models.WeatherReport
}

// WeatherConfig is built in the composition root; the service never reads
// ambient environment state.
type WeatherConfig struct {
	BaseURL  string
	APIKey   string
	CacheTTL time.Duration
	Timeout  time.Duration
}

type WeatherService struct {
	config WeatherConfig
	client *http.Client
	cache  *mem.WeatherCache
}

func NewWeatherService(config WeatherConfig, cache *mem.WeatherCache) WeatherServiceInterface {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = 10 * time.Minute
	}
	return &WeatherService{
		config: config,
		client: &http.Client{Timeout: timeout},
		cache:  cache,
	}
}

type openWeatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Visibility float64 `json:"visibility"`
	Main       struct {
		Humidity int `json:"humidity"`
	} `json:"main"`
}

func (w *WeatherService) Fetch(ctx context.Context, longitude, latitude float64) *response_models.WeatherReport {
	key := mem.CoordinateKey(longitude, latitude)
	if cached, ok := w.cache.Get(key); ok {
		if report, ok := cached.(*response_models.WeatherReport); ok {
			return report
		}
	}

	requestURL := fmt.Sprintf("%s?lat=%s&lon=%s&appid=%s",
		w.config.BaseURL,
		url.QueryEscape(fmt.Sprintf("%f", latitude)),
		url.QueryEscape(fmt.Sprintf("%f", longitude)),
		url.QueryEscape(w.config.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		log.Printf("Weather request build failed: %v", err)
		return nil
	}

	resp, err := w.client.Do(req)
	if err != nil {
		log.Printf("Weather provider unreachable: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Could not find weather at coordinates (%f, %f): status %d",
			longitude, latitude, resp.StatusCode)
		return nil
	}

	var weather openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&weather); err != nil {
		log.Printf("Weather response decode failed: %v", err)
		return nil
	}

	report := &response_models.WeatherReport{
		WindSpeed:     weather.Wind.Speed,
		WindDirection: weather.Wind.Deg,
		Visibility:    weather.Visibility / 1000,
		Humidity:      weather.Main.Humidity,
	}
	if len(weather.Weather) > 0 {
		report.Clouds = weather.Weather[0].Description
	}

	w.cache.Set(key, report, w.config.CacheTTL)
	return report
}
