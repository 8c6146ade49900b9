package publican

import (
	"strings"
	"testing"

	"niteout-backend/model"
	"niteout-backend/response"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsCompleteProfile(t *testing.T) {
	assert.NoError(t, validate(validPublican(), "s3cretpass"))
}

func TestValidateMissingFields(t *testing.T) {
	for _, clear := range []func(*model.Publican){
		func(p *model.Publican) { p.PubName = " " },
		func(p *model.Publican) { p.PhoneNumber = "" },
		func(p *model.Publican) { p.Address = "" },
		func(p *model.Publican) { p.Eircode = "" },
		func(p *model.Publican) { p.BER = "" },
	} {
		p := validPublican()
		clear(p)
		assert.Equal(t, response.MissingFields(), validate(p, "s3cretpass"))
	}
}

func TestValidateEircode(t *testing.T) {
	cases := []struct {
		eircode string
		valid   bool
	}{
		{"H91 XY23", true},
		{"H91XY23", true},
		{"D02 AF30", true},
		{" D02 AF30 ", true},
		{"H91", false},
		{"H91 XY2", false},
		{"H91  XY23", false},
		{"H91-XY23", false},
	}

	for _, tc := range cases {
		p := validPublican()
		p.Eircode = tc.eircode

		err := validate(p, "s3cretpass")
		if tc.valid {
			assert.NoError(t, err, tc.eircode)
		} else {
			assert.Equal(t, response.InvalidEircode(), err, tc.eircode)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"owner@theanchor.ie", true},
		{"owner+events@theanchor.ie", true},
		{"owner", false},
		{"owner@", false},
		{"@theanchor.ie", false},
		{"owner@" + strings.Repeat("a", 250) + ".ie", false},
	}

	for _, tc := range cases {
		p := validPublican()
		p.Email = tc.email

		err := validate(p, "s3cretpass")
		if tc.valid {
			assert.NoError(t, err, tc.email)
		} else {
			assert.Equal(t, response.InvalidEmail(), err, tc.email)
		}
	}
}

func TestValidateAddressLength(t *testing.T) {
	p := validPublican()
	p.Address = "1 A  "

	assert.Equal(t, response.InvalidAddress(), validate(p, "s3cretpass"))
}

func TestValidateUnknownBER(t *testing.T) {
	p := validPublican()
	p.BER = "Z9"

	err := validate(p, "s3cretpass")
	assert.Equal(t, "INVALID_DATA", errStatus(t, err))
}

func TestValidatePasswordRequired(t *testing.T) {
	assert.Equal(t, response.PasswordRequired(), validate(validPublican(), "  "))
}

func errStatus(t *testing.T, err error) string {
	t.Helper()
	res, ok := err.(response.ErrorResponse)
	if !ok {
		t.Fatalf("expected response error, got %v", err)
	}
	return res.Status
}
