package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// GenerateSmsCode returns a cryptographically random 6-digit code
func GenerateSmsCode() string {
	var n uint32
	if err := binary.Read(rand.Reader, binary.BigEndian, &n); err != nil {
		panic("failed to read random bytes for sms code")
	}
	return fmt.Sprintf("%06d", n%1000000)
}
