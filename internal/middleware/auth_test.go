package middleware

import (
	"crypto/ed25519"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clienthub/clienthub/internal/auth"
)

func TestAuthorize(t *testing.T) {
	public, private, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err, "failed to generate signing key")

	issuer := auth.NewJwtIssuer("clienthub", jwt.SigningMethodEdDSA, time.Hour, private)
	validator := auth.NewJwtValidator(jwt.SigningMethodEdDSA, public)

	e := echo.New()
	mw := Authorize(validator)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	call := func(authHdr string) (echo.Context, error) {
		req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
		if authHdr != "" {
			req.Header.Set("Authorization", authHdr)
		}
		c := e.NewContext(req, httptest.NewRecorder())
		return c, mw(next)(c)
	}

	t.Log("valid bearer token passes and identity is asserted")
	{
		email := "jane.doe@somemail.com"
		token, err := issuer.Sign("0583d7f3-5ae1-416a-92fa-120851905551", auth.IdentityClaims{Email: &email}, time.Now().UTC())
		require.NoError(t, err, "failed to sign token")

		c, err := call("Bearer " + token)
		require.NoError(t, err, "request must be authorized")

		identity := Identity(c)
		require.NotNil(t, identity, "identity must be stored in request context")
		assert.Equal(t, "0583d7f3-5ae1-416a-92fa-120851905551", identity.ID)
		assert.Equal(t, &email, identity.Email)
	}

	t.Log("missing Authorization header is rejected")
	{
		_, err := call("")

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr, "error must be echo http error")
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	}

	t.Log("expired token is rejected")
	{
		token, err := issuer.Sign("0583d7f3-5ae1-416a-92fa-120851905551", auth.IdentityClaims{}, time.Now().UTC().Add(-2*time.Hour))
		require.NoError(t, err, "failed to sign token")

		_, err = call("Bearer " + token)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr, "error must be echo http error")
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	}

	t.Log("token signed with a foreign key is rejected")
	{
		_, foreignKey, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err, "failed to generate signing key")

		foreignIssuer := auth.NewJwtIssuer("clienthub", jwt.SigningMethodEdDSA, time.Hour, foreignKey)
		token, err := foreignIssuer.Sign("0583d7f3-5ae1-416a-92fa-120851905551", auth.IdentityClaims{}, time.Now().UTC())
		require.NoError(t, err, "failed to sign token")

		_, err = call("Bearer " + token)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr, "error must be echo http error")
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	}
}

func TestIdentityAbsent(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Nil(t, Identity(c), "no identity must be resolved for unauthorized context")
}
