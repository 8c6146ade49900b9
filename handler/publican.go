package handler

import (
	"encoding/json"
	"net/http"

	"niteout-backend/factory"
	"niteout-backend/firebase"
	"niteout-backend/logger"
	"niteout-backend/model"
	"niteout-backend/publican"
	"niteout-backend/response"
)

const statusRegistered = "REGISTERED"

func RegisterPublican(service *publican.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.CreatePublican
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			logger.Errorf(ctx, "registerPublican: error unmarshalling request body: %+v", err)
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		if req.Data.Publican == nil || req.Data.Auth == nil {
			response.MissingFields().Send(ctx, w)
			return
		}

		p, err := service.Register(ctx, req.Data.Publican, req.Data.Auth.Password)
		if err != nil {
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data: &response.Data{
				Publican: p,
				Auth:     &model.Auth{PublicanID: p.PubID, Status: statusRegistered},
			},
			StatusCode: http.StatusCreated,
		}.Send(w)
	}
}

// SendPhoneOTP verifies the caller against the live Auth service before
// sending a code to the number on file.
func SendPhoneOTP(verifier *publican.PhoneVerifier, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.PhoneVerification
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil || req.Data.Auth == nil {
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		token, err := firebase.VerifyIDToken(ctx, f.FirebaseApp(ctx), req.Data.Auth.TokenID)
		if err != nil {
			response.Unauthorized().Send(ctx, w)
			return
		}

		if err := verifier.Send(ctx, token.UID); err != nil {
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Auth: &model.Auth{PublicanID: token.UID, Status: "OTP_SENT"}},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}

func VerifyPhoneOTP(verifier *publican.PhoneVerifier, f factory.Factory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req model.PhoneVerification
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil || req.Data.Auth == nil {
			response.BadRequest("invalid request body", "").Send(ctx, w)
			return
		}

		token, err := firebase.VerifyIDToken(ctx, f.FirebaseApp(ctx), req.Data.Auth.TokenID)
		if err != nil {
			response.Unauthorized().Send(ctx, w)
			return
		}

		if err := verifier.Verify(ctx, token.UID, req.Data.Auth.OTP); err != nil {
			sendError(ctx, w, err)
			return
		}

		response.SuccessResponse{
			Data:       &response.Data{Auth: &model.Auth{PublicanID: token.UID, Status: "PHONE_VERIFIED"}},
			StatusCode: http.StatusOK,
		}.Send(w)
	}
}
