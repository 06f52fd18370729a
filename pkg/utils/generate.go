package utils

import (
	"fmt"
	"math/rand"
)

// GenerateOTP creates a numeric OTP of the given length. Each digit is
// drawn independently, so leading zeros are possible and a new code has no
// relation to the previous one.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	otp := ""
	for i := 0; i < length; i++ {
		otp += fmt.Sprintf("%d", rand.Intn(10))
	}

	return otp
}
