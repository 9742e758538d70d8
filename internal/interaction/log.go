// Package interaction holds the append-only in-memory log of
// user-product events. Entries are never mutated or deleted; the log
// grows for the lifetime of the process.
package interaction

import (
	"sync"
	"time"

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/domain"

	"github.com/google/uuid"
)

// Log is the append-only interaction log.
type Log struct {
	mu      sync.RWMutex
	entries []domain.Interaction
}

// NewLog creates an empty interaction log.
func NewLog() *Log {
	return &Log{}
}

// Append records a new interaction and returns the stored entry with its
// generated id and timestamp.
func (l *Log) Append(userID, productID string, interactionType domain.InteractionType, rating *float64) domain.Interaction {
	entry := domain.Interaction{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Type:      interactionType,
		Rating:    rating,
		Timestamp: time.Now().UTC(),
	}

	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()

	return entry
}

// ProductsByUser returns the set of product ids the user has interacted
// with, in first-interaction order.
func (l *Log) ProductsByUser(userID string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]struct{})
	var products []string
	for _, entry := range l.entries {
		if entry.UserID != userID {
			continue
		}
		if _, ok := seen[entry.ProductID]; ok {
			continue
		}
		seen[entry.ProductID] = struct{}{}
		products = append(products, entry.ProductID)
	}
	return products
}

// Len returns the number of recorded interactions.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
