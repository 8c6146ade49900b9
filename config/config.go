package config

import (
	"github.com/spf13/viper"
)

const (
	Port               = "server.port"
	Secret             = "server.secret"
	JWTOfflineInterval = "server.jwt_offline_interval"
	SessionTTLDays     = "server.session_ttl_days"

	FirebaseProjectID             = "firebase.project_id"
	FirebaseServiceAccountKeyPath = "firebase.service_account_key_path"

	GeocodingURL    = "geocoding.url"
	GeocodingAPIKey = "geocoding.api_key"

	RedisAddress  = "redis.address"
	RedisPassword = "redis.password"
	RedisDB       = "redis.db"

	VaultAddress    = "vault.address"
	VaultToken      = "vault.token"
	VaultUnSealKey  = "vault.unseal_key"
	VaultSecretPath = "vault.secret_path"

	TwilioAccountSID = "twilio.account_sid"
	TwilioAuthToken  = "twilio.auth_token"
	TwilioURL        = "twilio.url"
	TwilioFrom       = "twilio.from"

	OTPSecret = "otp.secret"
)

func init() {
	viper.AutomaticEnv()
	viper.SetDefault(Port, "9000")
	viper.SetDefault(JWTOfflineInterval, 120)
	viper.SetDefault(SessionTTLDays, 30)
	viper.SetDefault(GeocodingURL, "https://maps.googleapis.com/maps/api/geocode/json")
}
