package firebase

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyJWTIDTokenFailsWhenEmpty(t *testing.T) {
	uid, ok := VerifyJWTIDToken("", "niteout-dev", time.Second)
	require.False(t, ok)
	assert.Equal(t, "", uid)
}

func TestVerifyJWTIDTokenFailsWhenMalformed(t *testing.T) {
	uid, ok := VerifyJWTIDToken("not.a.token", "niteout-dev", time.Second)
	require.False(t, ok)
	assert.Equal(t, "", uid)
}

func TestVerifyJWTIDTokenFailsWhenNoKid(t *testing.T) {
	token := unsignedToken(t, map[string]interface{}{"alg": "RS256", "typ": "JWT"}, map[string]interface{}{
		"aud": "niteout-dev",
		"sub": "acct-1",
	})

	uid, ok := VerifyJWTIDToken(token, "niteout-dev", time.Second)
	require.False(t, ok)
	assert.Equal(t, "", uid)
}

// unsignedToken builds a structurally valid JWT with a bogus signature, so
// verification fails before any certificate fetch.
func unsignedToken(t *testing.T, header, claims map[string]interface{}) string {
	t.Helper()

	encode := func(v interface{}) string {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(raw)
	}

	return fmt.Sprintf("%s.%s.%s", encode(header), encode(claims), base64.RawURLEncoding.EncodeToString([]byte("sig")))
}
