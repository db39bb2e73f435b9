package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
		CorsAllowedMethods []string `mapstructure:"cors_allowed_methods"`
		CorsAllowedHeaders []string `mapstructure:"cors_allowed_headers"`
	} `mapstructure:"server"`

	Database struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSLMode  string `mapstructure:"sslmode"`
		MaxConns int32  `mapstructure:"max_conns"`
	} `mapstructure:"database"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	JWT struct {
		Secret          string `mapstructure:"secret"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
		Issuer          string `mapstructure:"issuer"`
	} `mapstructure:"jwt"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	Accounting Accounting `mapstructure:"accounting"`
}

// Accounting holds the thresholds used by the alert evaluator and the
// row caps applied to read-side aggregations.
type Accounting struct {
	LowCashFloor          float64 `mapstructure:"low_cash_floor"`
	PendingOrderDays      int     `mapstructure:"pending_order_days"`
	MaxPendingAlerts      int     `mapstructure:"max_pending_alerts"`
	HighExpenseRatio      float64 `mapstructure:"high_expense_ratio"`
	ReceivableAgingDays   int     `mapstructure:"receivable_aging_days"`
	DashboardMaxRecords   int     `mapstructure:"dashboard_max_records"`
	ReconcileMaxRecords   int     `mapstructure:"reconcile_max_records"`
	VerificationTolerance float64 `mapstructure:"verification_tolerance"`
	DashboardCacheSeconds int     `mapstructure:"dashboard_cache_seconds"`

	// Reconciliation tolerances in rupiah; a difference equal to the
	// tolerance still matches.
	DepositTolerance float64 `mapstructure:"deposit_tolerance"`
	LineTolerance    float64 `mapstructure:"line_tolerance"`
	BankTolerance    float64 `mapstructure:"bank_tolerance"`
}

// DefaultAccounting returns the thresholds used when nothing is configured.
func DefaultAccounting() Accounting {
	return Accounting{
		LowCashFloor:          1000000,
		PendingOrderDays:      3,
		MaxPendingAlerts:      5,
		HighExpenseRatio:      0.7,
		ReceivableAgingDays:   2,
		DashboardMaxRecords:   5000,
		ReconcileMaxRecords:   2000,
		VerificationTolerance: 10000,
		DashboardCacheSeconds: 60,
		DepositTolerance:      1000,
		LineTolerance:         100,
		BankTolerance:         100,
	}
}

func Load() *Config {
	// Load .env file if exists (ignore error in production)
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")

	v.AutomaticEnv()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.cors_allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("server.cors_allowed_headers", []string{"Authorization", "Content-Type"})
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("jwt.issuer", "loket-backend")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "loket_db")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("log.level", "info")

	d := DefaultAccounting()
	v.SetDefault("accounting.low_cash_floor", d.LowCashFloor)
	v.SetDefault("accounting.pending_order_days", d.PendingOrderDays)
	v.SetDefault("accounting.max_pending_alerts", d.MaxPendingAlerts)
	v.SetDefault("accounting.high_expense_ratio", d.HighExpenseRatio)
	v.SetDefault("accounting.receivable_aging_days", d.ReceivableAgingDays)
	v.SetDefault("accounting.dashboard_max_records", d.DashboardMaxRecords)
	v.SetDefault("accounting.reconcile_max_records", d.ReconcileMaxRecords)
	v.SetDefault("accounting.verification_tolerance", d.VerificationTolerance)
	v.SetDefault("accounting.dashboard_cache_seconds", d.DashboardCacheSeconds)
	v.SetDefault("accounting.deposit_tolerance", d.DepositTolerance)
	v.SetDefault("accounting.line_tolerance", d.LineTolerance)
	v.SetDefault("accounting.bank_tolerance", d.BankTolerance)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		logg.WithField("module", "config").Info("no config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		logg.WithField("module", "config").Fatalf("config unmarshal error: %v", err)
	}

	// DB_* environment variables win over the file
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			cfg.Database.Port = n
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Database.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		cfg.Database.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Database.Name = name
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if pass := os.Getenv("REDIS_PASSWORD"); pass != "" {
		cfg.Redis.Password = pass
	}

	if cfg.JWT.Secret == "" || cfg.JWT.Secret == "${JWT_SECRET}" {
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		if cfg.JWT.Secret == "" {
			logg.WithField("module", "config").Fatal("JWT_SECRET not found in environment or config file")
		}
	}

	SetLogLevel(cfg.Log.Level)

	return &cfg
}
