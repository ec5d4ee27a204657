package domain

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func TestHMACValidatorValidate(t *testing.T) {
	// Arrange
	validator := NewHMACValidator("secret")
	payload := []byte("1700000000")
	signature := validator.Sign(payload)

	// Act & Assert
	if err := validator.Validate(payload, signature); err != nil {
		t.Errorf("Expected valid signature, got %v", err)
	}
	if err := validator.Validate(payload, "sha256="+signature); err != nil {
		t.Errorf("Expected prefixed signature to validate, got %v", err)
	}
	if err := validator.Validate(payload, "deadbeef"); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Expected ErrInvalidSignature, got %v", err)
	}
}

func TestHMACValidatorValidateTimestamp(t *testing.T) {
	// Arrange
	validator := NewHMACValidator("secret")
	now := time.Unix(1700000000, 0)
	fresh := strconv.FormatInt(now.Add(-time.Minute).Unix(), 10)
	stale := strconv.FormatInt(now.Add(-10*time.Minute).Unix(), 10)

	// Act & Assert
	if err := validator.ValidateTimestamp(fresh, validator.Sign([]byte(fresh)), now); err != nil {
		t.Errorf("Expected fresh timestamp to validate, got %v", err)
	}
	if err := validator.ValidateTimestamp(stale, validator.Sign([]byte(stale)), now); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Expected stale timestamp to fail, got %v", err)
	}
	if err := validator.ValidateTimestamp("", "", now); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Expected missing headers to fail, got %v", err)
	}
	if err := validator.ValidateTimestamp("soon", validator.Sign([]byte("soon")), now); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Expected malformed timestamp to fail, got %v", err)
	}
}
