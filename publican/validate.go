package publican

import (
	"fmt"
	"regexp"
	"strings"

	"niteout-backend/model"
	"niteout-backend/response"
)

var (
	rxEmail   = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+\\/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")
	rxEircode = regexp.MustCompile(`^[A-Za-z0-9]{3} ?[A-Za-z0-9]{4}$`)
)

const minAddressLength = 5

// validate applies the signup field rules in the order the form reports
// them. Password strength is left to the identity service.
func validate(p *model.Publican, password string) error {
	if isEmpty(p.PubName) || isEmpty(p.PhoneNumber) || isEmpty(p.Address) || isEmpty(p.Eircode) || isEmpty(p.BER) {
		return response.MissingFields()
	}

	if !model.ValidBER(p.BER) {
		return response.InvalidData(fmt.Sprintf("validate: unknown BER rating: %s", p.BER))
	}

	if !validateEmail(p.Email) {
		return response.InvalidEmail()
	}

	if len(strings.TrimSpace(p.Address)) < minAddressLength {
		return response.InvalidAddress()
	}

	if !rxEircode.MatchString(strings.TrimSpace(p.Eircode)) {
		return response.InvalidEircode()
	}

	if isEmpty(password) {
		return response.PasswordRequired()
	}

	return nil
}

func validateEmail(email string) bool {
	if len(email) > 254 {
		return false
	}
	return rxEmail.MatchString(email)
}

func isEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
