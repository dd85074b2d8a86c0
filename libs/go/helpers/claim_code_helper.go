package helpers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/constants"
)

// ClaimCodePattern matches codes produced by GenerateClaimCode
var ClaimCodePattern = regexp.MustCompile(`^STU-[0-9A-F]{8}-\d{4}$`)

// GenerateClaimCode returns a code of the form STU-XXXXXXXX-YYYY where X is
// random uppercase hex and YYYY is the year of now.
func GenerateClaimCode(now time.Time) (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("%s-%s-%04d", constants.ClaimCodePrefix, strings.ToUpper(hex.EncodeToString(buf)), now.Year()), nil
}

// GenerateNumericCode returns a random decimal code with the given number of digits.
func GenerateNumericCode(digits int) (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}

// HashCode returns the hex SHA-256 of a one-time code
func HashCode(code string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(code)))
	return hex.EncodeToString(sum[:])
}
