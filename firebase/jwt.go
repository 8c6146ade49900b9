package firebase

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
)

const validationErrorExpired = "Token is expired"

var CertsAPIEndpoint = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

// VerifyJWTIDToken verifies a Firebase ID token offline against Google's
// published certificates. A token expired by less than interval is still
// accepted, so a device with a stale token can complete an in-flight action.
func VerifyJWTIDToken(t, projectID string, interval time.Duration) (uid string, ok bool) {
	parsed, err := jwt.Parse(t, func(t *jwt.Token) (interface{}, error) {
		cert, err := getCertificateFromToken(t)
		if err != nil {
			return "", err
		}
		return readPublicKey(cert)
	})

	if err != nil && err.Error() == validationErrorExpired {
		claims, valid := parsed.Claims.(jwt.MapClaims)
		if !valid {
			return "", false
		}

		if withinInterval(claims, interval) {
			uid, ok = claims["sub"].(string)
			return uid, ok
		}
		return "", false
	}

	if err != nil {
		return "", false
	}

	if !parsed.Valid {
		return "", false
	}

	if parsed.Header["alg"] != "RS256" {
		return "", false
	}

	ok, uid = verifyPayload(parsed, projectID)
	return uid, ok
}

func withinInterval(claims jwt.MapClaims, interval time.Duration) bool {
	var expiry time.Time
	switch exp := claims["exp"].(type) {
	case float64:
		expiry = time.Unix(int64(exp), 0)
	case json.Number:
		v, _ := exp.Int64()
		expiry = time.Unix(v, 0)
	default:
		return false
	}

	return time.Now().Add(interval * -1).Before(expiry)
}

func verifyPayload(t *jwt.Token, projectID string) (ok bool, uid string) {
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return
	}

	claimsAud, ok := claims["aud"].(string)
	if claimsAud != projectID || !ok {
		return false, ""
	}

	iss := "https://securetoken.google.com/" + projectID
	claimsIss, ok := claims["iss"].(string)
	if claimsIss != iss || !ok {
		return false, ""
	}

	uid, ok = claims["sub"].(string)
	if !ok {
		return
	}

	now := time.Now()

	authTime, ok := claims["auth_time"].(float64)
	if !ok {
		return
	}
	if !time.Unix(int64(authTime), 0).Before(now) {
		return false, ""
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return
	}
	if !time.Unix(int64(iat), 0).Before(now) {
		return false, ""
	}

	if claims.Valid() != nil {
		return false, ""
	}

	return
}

func getCertificates() (certs map[string]string, err error) {
	res, err := http.Get(CertsAPIEndpoint)
	if err != nil {
		return
	}
	defer res.Body.Close()

	data, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return
	}

	err = json.Unmarshal(data, &certs)
	return
}

func getCertificateFromToken(token *jwt.Token) ([]byte, error) {
	kid, ok := token.Header["kid"]
	if !ok {
		return nil, errors.New("kid not found")
	}

	kidString, ok := kid.(string)
	if !ok {
		return nil, errors.New("kid cast error to string")
	}

	certs, err := getCertificates()
	if err != nil {
		return nil, err
	}

	return []byte(certs[kidString]), nil
}

func readPublicKey(cert []byte) (*rsa.PublicKey, error) {
	publicKeyBlock, _ := pem.Decode(cert)
	if publicKeyBlock == nil {
		return nil, errors.New("invalid public key data")
	}

	if publicKeyBlock.Type != "CERTIFICATE" {
		return nil, fmt.Errorf("invalid public key type: %s", publicKeyBlock.Type)
	}

	c, err := x509.ParseCertificate(publicKeyBlock.Bytes)
	if err != nil {
		return nil, err
	}

	publicKey, ok := c.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not RSA public key")
	}

	return publicKey, nil
}
