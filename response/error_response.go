package response

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"niteout-backend/logger"
)

type ErrorResponse struct {
	StatusCode  int    `json:"-"`
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	Description string `json:"-"`
}

func (r ErrorResponse) Error() string {
	return fmt.Sprintf("StatusCode: %d, Success: %t, Message: %s, Status: %s, Description: %s", r.StatusCode, r.Success, r.Message, r.Status, r.Description)
}

func (r ErrorResponse) Send(ctx context.Context, w http.ResponseWriter) {
	logger.Errorf(ctx, r.Error())
	w.WriteHeader(r.StatusCode)
	json.NewEncoder(w).Encode(r)
}

func BadRequest(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     message,
		Status:      "BAD REQUEST",
		Description: description,
	}
}

func ResourceNotFound(message, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusNotFound,
		Success:     false,
		Message:     message,
		Status:      "NOT FOUND",
		Description: description,
	}
}

func Unauthorized() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusUnauthorized,
		Success:    false,
		Message:    "No valid Auth Token",
		Status:     "UNAUTHORISED",
	}
}

func SomethingWrong() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Success:    false,
		Message:    "Sorry, Something went wrong",
		Status:     "SOMETHING_WRONG",
	}
}

func MissingFields() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Please fill in all fields before signing up",
		Status:     "MISSING_FIELDS",
	}
}

func InvalidData(description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  http.StatusBadRequest,
		Success:     false,
		Message:     "Invalid data passed",
		Status:      "INVALID_DATA",
		Description: description,
	}
}

func InvalidEmail() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Please enter a valid email address",
		Status:     "INVALID_EMAIL",
	}
}

func InvalidAddress() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Please enter a valid address",
		Status:     "INVALID_ADDRESS",
	}
}

func InvalidEircode() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Please enter a valid Eircode (e.g. R21 XXXX)",
		Status:     "INVALID_EIRCODE",
	}
}

func PasswordRequired() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Password is required",
		Status:     "PASSWORD_REQUIRED",
	}
}

func WeakPassword() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Password is too weak! Try a stronger one",
		Status:     "WEAK_PASSWORD",
	}
}

func DuplicatePub() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusConflict,
		Success:    false,
		Message:    "A pub with this name already exists. Choose another name",
		Status:     "DUPLICATE_PUB",
	}
}

func DuplicateEntry() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusConflict,
		Success:    false,
		Message:    "Email is already in use. Please try another one",
		Status:     "DUPLICATE_ENTRY",
	}
}

func GeocodingFailed() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadGateway,
		Success:    false,
		Message:    "Could not fetch coordinates. Please check your Eircode",
		Status:     "GEOCODING_FAILED",
	}
}

func PubNotFound() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusNotFound,
		Success:    false,
		Message:    "Publican details not found",
		Status:     "PUB_NOT_FOUND",
	}
}

func CrossDayRange() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Start time and end time must be on the same day",
		Status:     "CROSS_DAY_RANGE",
	}
}

func InvalidTimeRange() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "End time must be after start time",
		Status:     "INVALID_TIME_RANGE",
	}
}

func InvalidSeats() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Number of seats must be at least one",
		Status:     "INVALID_SEATS",
	}
}

func ExpiryBeforeStart() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Expiration time must be after the start time",
		Status:     "EXPIRY_BEFORE_START",
	}
}

func PersistenceFailed() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Success:    false,
		Message:    "Failed to save. Please try again",
		Status:     "PERSISTENCE_FAILED",
	}
}

func OTPExpired() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusGone,
		Success:    false,
		Message:    "OTP Expired, Please try again",
		Status:     "OTP_EXPIRED",
	}
}

func OTPMismatch() ErrorResponse {
	return ErrorResponse{
		StatusCode: http.StatusBadRequest,
		Success:    false,
		Message:    "Wrong OTP entered",
		Status:     "OTP_MISMATCH",
	}
}
