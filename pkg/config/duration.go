package config

import (
	"fmt"
	"time"
)

// ValidatePositiveDuration validates that a duration is positive (greater than zero).
//
// This is commonly used for timeout, interval, and window validation
// where a non-zero, positive value is required.
//
// Parameters:
//   - d: Duration to validate
//
// Returns:
//   - error: nil if valid, error otherwise
//
// Example:
//
//	if err := ValidatePositiveDuration(timeout); err != nil {
//	    return fmt.Errorf("invalid timeout: %w", err)
//	}
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration must be positive, got %v", d)
	}
	return nil
}

// ValidateDurationRange validates that a duration is within a specified range.
//
// The duration must be >= min and <= max (inclusive).
//
// Parameters:
//   - d: Duration to validate
//   - min: Minimum allowed duration (inclusive)
//   - max: Maximum allowed duration (inclusive)
//
// Returns:
//   - error: nil if valid, error otherwise
//
// Example:
//
//	// Validate scrape timeout is between 1 second and 10 minutes
//	if err := ValidateDurationRange(timeout, time.Second, 10*time.Minute); err != nil {
//	    return fmt.Errorf("invalid scrape timeout: %w", err)
//	}
func ValidateDurationRange(d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}

	if d < min {
		return fmt.Errorf("duration %v is below minimum %v", d, min)
	}

	if d > max {
		return fmt.Errorf("duration %v exceeds maximum %v", d, max)
	}

	return nil
}
