package jwt_test

import (
	"errors"
	"testing"
	"tourdesk/config"
	"tourdesk/infras/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "tourdesk-test"
	cfg.JWT.Secret = secret
	cfg.JWT.ExpireHours = 24

	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.New(testConfig("test-secret"))

	token, err := svc.GenerateToken(42, "admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.TokenID)
	assert.Equal(t, "tourdesk-test", claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := jwt.New(testConfig("secret-one")).GenerateToken(1, "admin", "admin")
	require.NoError(t, err)

	_, err = jwt.New(testConfig("secret-two")).ValidateToken(token)
	assert.True(t, errors.Is(err, jwt.ErrInvalidToken))
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := jwt.New(testConfig("test-secret"))

	_, err := svc.ValidateToken("not.a.token")
	assert.True(t, errors.Is(err, jwt.ErrInvalidToken))
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{
			name:   "valid bearer token",
			header: "Bearer abc.def.ghi",
			want:   "abc.def.ghi",
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "missing bearer prefix",
			header:  "abc.def.ghi",
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			header:  "Basic abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
