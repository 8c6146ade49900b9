package publican

import (
	"context"
	"errors"
	"fmt"
	"time"

	"niteout-backend/model"
	"niteout-backend/response"
	"niteout-backend/store"
	"niteout-backend/twilio"

	"github.com/go-redis/redis"
	"github.com/pquerna/otp/totp"
)

const (
	otpMessage = "OTP to verify your pub at niteout is: %s"
	otpTTL     = 5 * time.Minute
)

// PhoneVerifier confirms a publican's phone number with a one-time code
// sent over SMS and cached for five minutes.
type PhoneVerifier struct {
	store  store.Store
	sms    twilio.Sender
	cache  *redis.Client
	secret string
}

func NewPhoneVerifier(st store.Store, sms twilio.Sender, cache *redis.Client, secret string) *PhoneVerifier {
	return &PhoneVerifier{
		store:  st,
		sms:    sms,
		cache:  cache,
		secret: secret,
	}
}

func (v *PhoneVerifier) Send(ctx context.Context, pubID string) error {
	var p model.Publican
	err := v.store.Read(ctx, store.CollectionPublicans, pubID, &p)
	if errors.Is(err, store.ErrNotFound) {
		return response.PubNotFound()
	}
	if err != nil {
		return fmt.Errorf("send: error loading publican %s: %w", pubID, err)
	}

	code, err := totp.GenerateCode(v.secret, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("send: unable to generate otp: %w", err)
	}

	if _, err := v.sms.Send(p.PhoneNumber, fmt.Sprintf(otpMessage, code)); err != nil {
		return fmt.Errorf("send: unable to send otp to %s: %w", p.PhoneNumber, err)
	}

	if err := v.cache.Set(otpKey(pubID), code, otpTTL).Err(); err != nil {
		return fmt.Errorf("send: unable to cache otp for %s: %w", pubID, err)
	}

	return nil
}

func (v *PhoneVerifier) Verify(ctx context.Context, pubID, otp string) error {
	cached := v.cache.Get(otpKey(pubID))
	if cached.Err() != nil {
		return response.OTPExpired()
	}

	if cached.Val() != otp {
		return response.OTPMismatch()
	}

	err := v.store.Update(ctx, store.CollectionPublicans, pubID, map[string]interface{}{"phone_verified": true})
	if errors.Is(err, store.ErrNotFound) {
		return response.PubNotFound()
	}
	if err != nil {
		return fmt.Errorf("verify: unable to mark phone verified for %s: %w", pubID, err)
	}

	return nil
}

func otpKey(pubID string) string {
	return fmt.Sprintf("publican-otp-%s", pubID)
}
