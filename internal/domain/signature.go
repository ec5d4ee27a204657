package domain

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaxSignatureAge bounds how old a signed scheduler timestamp may be
const MaxSignatureAge = 5 * time.Minute

// HMACValidator signs and checks scheduler invocations using HMAC-SHA256
type HMACValidator struct {
	secret string
}

// NewHMACValidator creates a new HMAC signature validator
func NewHMACValidator(secret string) *HMACValidator {
	return &HMACValidator{secret: secret}
}

// Sign returns the hex signature of payload
func (v *HMACValidator) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Validate checks if the payload signature is valid
func (v *HMACValidator) Validate(payload []byte, signature string) error {
	signature = strings.TrimPrefix(strings.TrimSpace(signature), "sha256=")
	expected := v.Sign(payload)

	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return ErrInvalidSignature
	}

	return nil
}

// ValidateTimestamp checks a signature over a unix-seconds timestamp and
// rejects timestamps further than MaxSignatureAge from now.
func (v *HMACValidator) ValidateTimestamp(timestamp, signature string, now time.Time) error {
	if timestamp == "" || signature == "" {
		return fmt.Errorf("%w: missing scheduler timestamp or signature", ErrInvalidSignature)
	}
	secs, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: malformed timestamp", ErrInvalidSignature)
	}
	age := now.Sub(time.Unix(secs, 0))
	if age > MaxSignatureAge || age < -MaxSignatureAge {
		return fmt.Errorf("%w: timestamp outside allowed skew", ErrInvalidSignature)
	}
	return v.Validate([]byte(timestamp), signature)
}
