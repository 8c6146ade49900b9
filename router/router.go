package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"niteout-backend/config"
	"niteout-backend/event"
	"niteout-backend/factory"
	"niteout-backend/geocode"
	"niteout-backend/handler"
	"niteout-backend/healthcheck"
	"niteout-backend/identity"
	"niteout-backend/logger"
	"niteout-backend/middleware"
	"niteout-backend/publican"
	"niteout-backend/response"
	"niteout-backend/session"
	"niteout-backend/store"
	"niteout-backend/twilio"
	"niteout-backend/vault"

	"github.com/gorilla/mux"
	"github.com/spf13/viper"
)

// Router returns the router for all the API handler.
func Router(ctx context.Context) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.SetCorrelationIDHeader)
	r.Use(middleware.PanicHandler)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.ResourceNotFound(fmt.Sprintf("The requested resource was not found: path: %s, method: %s", req.URL.Path, req.Method), "The requested resource was not found!").Send(req.Context(), w)
	})

	r.Use(middleware.ResponseTimeLogging)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.SetContentTypeHeader)

	geocodingAPIKey := viper.GetString(config.GeocodingAPIKey)
	twilioAccountSID := viper.GetString(config.TwilioAccountSID)
	twilioAuthToken := viper.GetString(config.TwilioAuthToken)
	otpSecret := viper.GetString(config.OTPSecret)

	// With a vault address configured, third-party credentials come from the
	// kv mount instead of the config file.
	if viper.GetString(config.VaultAddress) != "" {
		v, err := vault.New(
			viper.GetString(config.VaultToken),
			viper.GetString(config.VaultUnSealKey),
			viper.GetString(config.VaultAddress),
			viper.GetString(config.VaultSecretPath))
		if err != nil {
			logger.Fatalf(ctx, "router: Error creating vault client: %+v", err)
		}

		for field, target := range map[string]*string{
			"geocoding_api_key":  &geocodingAPIKey,
			"twilio_account_sid": &twilioAccountSID,
			"twilio_auth_token":  &twilioAuthToken,
			"otp_secret":         &otpSecret,
		} {
			value, err := v.Secret(field)
			if err != nil {
				logger.Fatalf(ctx, "router: Error reading %s from vault: %+v", field, err)
			}
			*target = value
		}
	}

	f := factory.NewFactory()
	st := store.NewFirestore(f.Firestore(ctx))
	sessions := session.NewRedis(f.Redis(ctx), []byte(viper.GetString(config.Secret)))

	id := identity.NewFirebase(f.FirebaseApp(ctx))
	geocoder := geocode.NewGoogleResolver(viper.GetString(config.GeocodingURL), geocodingAPIKey)
	sms := twilio.NewSender(
		twilioAccountSID,
		twilioAuthToken,
		viper.GetString(config.TwilioURL),
		viper.GetString(config.TwilioFrom))

	sessionTTL := time.Duration(viper.GetInt(config.SessionTTLDays)) * 24 * time.Hour
	registrar := publican.NewRegistrar(id, geocoder, st, sessions, sessionTTL)
	phoneVerifier := publican.NewPhoneVerifier(st, sms, f.Redis(ctx), otpSecret)
	eventService := event.NewService(st, sessions)

	r.HandleFunc("/healthcheck", healthcheck.Self).Methods(http.MethodGet)
	baseRouter := r.PathPrefix("/v1").Subrouter()

	publicanRouter := baseRouter.PathPrefix("/publican").Subrouter()
	publicanRouter.HandleFunc("", handler.RegisterPublican(registrar)).Methods(http.MethodPost)
	publicanRouter.HandleFunc("/phone", handler.SendPhoneOTP(phoneVerifier, f)).Methods(http.MethodPost)
	publicanRouter.HandleFunc("/phone/verify", handler.VerifyPhoneOTP(phoneVerifier, f)).Methods(http.MethodPost)

	baseRouter.HandleFunc("/event", handler.CreateEvent(eventService)).Methods(http.MethodPost)
	baseRouter.HandleFunc("/pubs", handler.FetchPubs(st)).Methods(http.MethodGet)

	checkRouter := baseRouter.PathPrefix("/check").Subrouter()
	checkRouter.HandleFunc("/pub_name", handler.CheckPubName(st)).Methods(http.MethodPost)
	checkRouter.HandleFunc("/email", handler.CheckEmail(st)).Methods(http.MethodPost)

	return r
}
