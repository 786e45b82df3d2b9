package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	JWT       JWTConfig
	UPI       UPIConfig
	QRGateway QRGatewayConfig
	Billing   BillingConfig
	LogLevel  string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
}

// UPIConfig holds the payee identity used when building payment intents
type UPIConfig struct {
	PayeeID   string
	PayeeName string
	Currency  string
	Note      string
}

// QRGatewayConfig holds the external QR-image gateway configuration
type QRGatewayConfig struct {
	BaseURL string
	Size    int
	Mock    bool
}

// BillingConfig holds the billing constants of the service
type BillingConfig struct {
	MixedWasteFine float64
	PickupFee      float64
	DefaultPlanID  string
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "greencity-connect")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("UPI.PayeeID", "greencity@upi")
	viper.SetDefault("UPI.PayeeName", "Green City Connect")
	viper.SetDefault("UPI.Currency", "INR")
	viper.SetDefault("UPI.Note", "Monthly waste collection fee")
	viper.SetDefault("QRGateway.BaseURL", "https://api.qrserver.com/v1/create-qr-code/")
	viper.SetDefault("QRGateway.Size", 200)
	viper.SetDefault("QRGateway.Mock", false)
	viper.SetDefault("Billing.MixedWasteFine", 100.0)
	viper.SetDefault("Billing.PickupFee", 150.0)
	viper.SetDefault("Billing.DefaultPlanID", "plan_basic")
	viper.SetDefault("LogLevel", "info")
}
