package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Inventory InventoryConfig
	Quality   QualityConfig
	Report    ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env       string // development, staging, production
	Name      string
	PlantName string // planta que encabeza reportes y bitácoras
	LogLevel  string
}

// InventoryConfig umbrales de clasificación de stock como fracción de la
// capacidad máxima.
type InventoryConfig struct {
	CriticalRatio float64 // ratio <= CriticalRatio -> Critical
	LowRatio      float64 // ratio <= LowRatio      -> Low
}

// QualityConfig umbrales del resultado global de inspección sobre el
// puntaje 0-100.
type QualityConfig struct {
	PassScore        int // score >= PassScore        -> Pass
	ConditionalScore int // score >= ConditionalScore -> Conditional
}

// ReportConfig salida de reportes PDF.
type ReportConfig struct {
	OutputDir string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// PLANT_NAME, INVENTORY_CRITICAL_RATIO, QUALITY_PASS_SCORE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:       getString(v, "APP_ENV", "development"),
			Name:      getString(v, "APP_NAME", "planta-core"),
			PlantName: getString(v, "PLANT_NAME", "Austin Plant A"),
			LogLevel:  getString(v, "LOG_LEVEL", "info"),
		},
		Inventory: InventoryConfig{
			CriticalRatio: getFloat(v, "INVENTORY_CRITICAL_RATIO", 0.2),
			LowRatio:      getFloat(v, "INVENTORY_LOW_RATIO", 0.3),
		},
		Quality: QualityConfig{
			PassScore:        getInt(v, "QUALITY_PASS_SCORE", 100),
			ConditionalScore: getInt(v, "QUALITY_CONDITIONAL_SCORE", 70),
		},
		Report: ReportConfig{
			OutputDir: getString(v, "REPORT_OUTPUT_DIR", "."),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, _ := strconv.ParseFloat(v.GetString(key), 64)
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}
