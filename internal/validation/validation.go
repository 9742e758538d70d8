package validation

import (
	"fmt"
	"strings"

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/domain"
)

const (
	UserIDMinLength = 1
	UserIDMaxLength = 100

	MinRating = 0.0
	MaxRating = 5.0
)

// Error is a field-scoped validation failure suitable for returning to
// the caller as a 400 response.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(field, format string, args ...interface{}) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// UserID checks that a user identifier is a non-empty string of at most
// 100 characters and returns the canonical id.
func UserID(userID string) (string, error) {
	if userID == "" {
		return "", newError("user_id", "User ID must be a non-empty string")
	}
	if len(userID) < UserIDMinLength || len(userID) > UserIDMaxLength {
		return "", newError("user_id", "User ID must be between %d and %d characters", UserIDMinLength, UserIDMaxLength)
	}
	return userID, nil
}

// ProductID checks that a product identifier is a non-empty string.
// Existence against the catalog is checked later by the service.
func ProductID(productID string) (string, error) {
	if productID == "" {
		return "", newError("product_id", "Product ID must be a non-empty string")
	}
	return productID, nil
}

// Rating checks that a rating value lies in [0, 5].
func Rating(rating float64) error {
	if rating < MinRating || rating > MaxRating {
		return newError("rating", "Rating must be between %g and %g", MinRating, MaxRating)
	}
	return nil
}

// Limit checks that a result limit lies in [1, max].
func Limit(limit, max int) (int, error) {
	if limit < 1 {
		return 0, newError("limit", "Limit must be at least 1")
	}
	if limit > max {
		return 0, newError("limit", "Limit must be at most %d", max)
	}
	return limit, nil
}

// Category checks a category name case-insensitively against the fixed
// category set and returns the canonical casing.
func Category(category string) (string, error) {
	if category == "" {
		return "", newError("category", "Category must be a non-empty string")
	}
	for _, valid := range domain.Categories {
		if strings.EqualFold(category, valid) {
			return valid, nil
		}
	}
	return "", newError("category", "Invalid category. Must be one of: %s", strings.Join(domain.Categories, ", "))
}

// InteractionType checks that an interaction type is one of the known
// event kinds.
func InteractionType(interactionType string) (domain.InteractionType, error) {
	if interactionType == "" {
		return "", newError("interaction_type", "Interaction type must be a non-empty string")
	}
	for _, valid := range domain.InteractionTypes {
		if interactionType == string(valid) {
			return valid, nil
		}
	}
	names := make([]string, len(domain.InteractionTypes))
	for i, t := range domain.InteractionTypes {
		names[i] = string(t)
	}
	return "", newError("interaction_type", "Invalid interaction type. Must be one of: %s", strings.Join(names, ", "))
}
