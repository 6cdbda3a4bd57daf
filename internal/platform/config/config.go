package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/harvestive/harvestive-backend/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	AdminPassword string

	MinDeposit         decimal.Decimal
	MinWithdrawal      decimal.Decimal
	InvestmentTermDays int
	PlanRates          domain.PlanTable

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "168h")
	viper.SetDefault("JWT_ISSUER", "harvestive-backend")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("MIN_DEPOSIT", "100")
	viper.SetDefault("MIN_WITHDRAWAL", "20000")
	viper.SetDefault("INVESTMENT_TERM_DAYS", 30)
	viper.SetDefault("PLAN_RATES", "STANDARD PLAN=0.035;PREMIUM PLAN=0.045;INVESTORS PLAN=0.075;CONFIDENT PLAN=0.12")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 24 * 7 // Default to 7 days
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	if cfg.AdminPassword == "" {
		log.Println("Warning: ADMIN_PASSWORD not set. Admin login is disabled.")
	}

	cfg.MinDeposit, err = decimal.NewFromString(viper.GetString("MIN_DEPOSIT"))
	if err != nil {
		cfg.MinDeposit = decimal.NewFromInt(100)
		log.Printf("Warning: Invalid value for MIN_DEPOSIT. Defaulting to %s.\n", cfg.MinDeposit.String())
	}

	cfg.MinWithdrawal, err = decimal.NewFromString(viper.GetString("MIN_WITHDRAWAL"))
	if err != nil {
		cfg.MinWithdrawal = decimal.NewFromInt(20000)
		log.Printf("Warning: Invalid value for MIN_WITHDRAWAL. Defaulting to %s.\n", cfg.MinWithdrawal.String())
	}

	cfg.InvestmentTermDays = viper.GetInt("INVESTMENT_TERM_DAYS")
	if cfg.InvestmentTermDays <= 0 {
		cfg.InvestmentTermDays = 30
		log.Printf("Warning: Invalid value for INVESTMENT_TERM_DAYS. Defaulting to %d.\n", cfg.InvestmentTermDays)
	}

	cfg.PlanRates, err = parsePlanRates(viper.GetString("PLAN_RATES"))
	if err != nil {
		return nil, fmt.Errorf("invalid PLAN_RATES: %w", err)
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}

// parsePlanRates parses "NAME=rate;NAME=rate" into a plan table. Every rate
// must be a decimal strictly between 0 and 1.
func parsePlanRates(raw string) (domain.PlanTable, error) {
	table := domain.PlanTable{}
	one := decimal.NewFromInt(1)
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, rateStr, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("malformed plan entry %q", entry)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(rateStr))
		if err != nil {
			return nil, fmt.Errorf("malformed rate in plan entry %q: %w", entry, err)
		}
		if !rate.IsPositive() || rate.GreaterThanOrEqual(one) {
			return nil, fmt.Errorf("rate for plan %q must be in (0,1), got %s", name, rate.String())
		}
		table[strings.TrimSpace(name)] = rate
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("no plans configured")
	}
	return table, nil
}
