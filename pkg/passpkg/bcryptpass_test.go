package passpkg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	password := "demo-wallet-secret"

	first, err := Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	require.NotEqual(t, password, first)

	second, err := Hash(password)
	require.NoError(t, err)
	require.NotEqual(t, first, second, "hashes must be salted")
}

func TestCheck(t *testing.T) {
	hashed, err := Hash("demo-wallet-secret")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		password string
		hashed   string
		wantErr  error
	}{
		{
			name:     "Match",
			password: "demo-wallet-secret",
			hashed:   hashed,
		},
		{
			name:     "Mismatch",
			password: "demo",
			hashed:   hashed,
			wantErr:  bcrypt.ErrMismatchedHashAndPassword,
		},
		{
			name:     "NotAHash",
			password: "demo-wallet-secret",
			hashed:   "plain",
			wantErr:  bcrypt.ErrHashTooShort,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Check(tc.password, tc.hashed)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
