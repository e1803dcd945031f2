package ordersink

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/urbtech/urbtech-backend/internal/chatbot"
	"github.com/urbtech/urbtech-backend/internal/models"
)

const (
	failureThreshold = 3
	cooldownPeriod   = 30 * time.Second
)

// FallbackSink tries the primary sink and degrades to the secondary when it
// fails, so the user never sees a persistence error. After a run of
// consecutive primary failures the primary is skipped for a cooldown window.
type FallbackSink struct {
	primary   chatbot.OrderSink
	secondary chatbot.OrderSink

	mu           sync.Mutex
	failures     int
	skippedUntil time.Time
}

// NewFallbackSink wraps primary with a secondary fallback
func NewFallbackSink(primary, secondary chatbot.OrderSink) *FallbackSink {
	return &FallbackSink{
		primary:   primary,
		secondary: secondary,
	}
}

func (f *FallbackSink) EnsureCustomer(ctx context.Context, name, customerType, location string) (*models.Customer, error) {
	if f.primaryAvailable() {
		customer, err := f.primary.EnsureCustomer(ctx, name, customerType, location)
		if err == nil {
			f.recordSuccess()
			return customer, nil
		}
		f.recordFailure(err)
	}
	return f.secondary.EnsureCustomer(ctx, name, customerType, location)
}

func (f *FallbackSink) CreateOrder(ctx context.Context, draft *chatbot.OrderDraft, customerID uint) (*models.Order, error) {
	if f.primaryAvailable() {
		order, err := f.primary.CreateOrder(ctx, draft, customerID)
		if err == nil {
			f.recordSuccess()
			return order, nil
		}
		f.recordFailure(err)
	}
	return f.secondary.CreateOrder(ctx, draft, customerID)
}

func (f *FallbackSink) primaryAvailable() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return time.Now().After(f.skippedUntil)
}

func (f *FallbackSink) recordSuccess() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = 0
}

func (f *FallbackSink) recordFailure(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failures++
	log.Printf("⚠️  Primary order sink failed (%d consecutive): %v - falling back to local storage", f.failures, err)

	if f.failures >= failureThreshold {
		f.skippedUntil = time.Now().Add(cooldownPeriod)
		log.Printf("⚠️  Primary order sink skipped until %s", f.skippedUntil.Format(time.RFC3339))
	}
}
