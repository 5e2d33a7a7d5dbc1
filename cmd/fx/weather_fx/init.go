package weather_fx

import (
	"os"

	"go.uber.org/fx"

	"golfpoi/internal/services"
	mem "golfpoi/pkg/memcache"
)

var Module = fx.Provide(
	provideWeatherCache, provideWeatherService)

func provideWeatherCache() *mem.WeatherCache {
	return mem.NewWeatherCache()
}

func provideWeatherService(cache *mem.WeatherCache) services.WeatherServiceInterface {
	return services.NewWeatherService(services.WeatherConfig{
		BaseURL: os.Getenv("WEATHER_API_URL"),
		APIKey:  os.Getenv("WEATHER_API_KEY"),
	}, cache)
}
