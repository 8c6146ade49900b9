package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"niteout-backend/config"
	"niteout-backend/firebase"
	"niteout-backend/logger"
	"niteout-backend/response"

	"github.com/spf13/viper"
)

// sendError maps service errors to responses. Tagged response errors go out
// as-is; anything else becomes a generic failure that keeps the diagnostic
// text in the description.
func sendError(ctx context.Context, w http.ResponseWriter, err error) {
	var res response.ErrorResponse
	if errors.As(err, &res) {
		res.Send(ctx, w)
		return
	}

	logger.Errorf(ctx, "request failed: %+v", err)
	fallback := response.SomethingWrong()
	fallback.Description = err.Error()
	fallback.Send(ctx, w)
}

// verifyCaller checks the request's ID token offline and returns the
// authenticated account id.
func verifyCaller(tokenID string) (string, bool) {
	interval := time.Duration(viper.GetInt(config.JWTOfflineInterval)) * time.Second
	return firebase.VerifyJWTIDToken(tokenID, viper.GetString(config.FirebaseProjectID), interval)
}
