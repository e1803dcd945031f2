package chatbot

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"

	"github.com/urbtech/urbtech-backend/internal/models"
)

// OrderSink persists a completed conversation. EnsureCustomer must be called
// before CreateOrder and its customer id propagated.
type OrderSink interface {
	EnsureCustomer(ctx context.Context, name, customerType, location string) (*models.Customer, error)
	CreateOrder(ctx context.Context, draft *OrderDraft, customerID uint) (*models.Order, error)
}

// Input is a channel-normalized inbound message
type Input struct {
	Text      string
	MediaURLs []string
}

// Result of one step transition
type Result struct {
	NextStep Step
	Messages []string
	Terminal bool
}

var nameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// Engine is the channel-agnostic conversation state machine. One engine
// serves all sessions of a channel; per-session state lives in the draft and
// step passed to Advance.
type Engine struct {
	policy       Policy
	sink         OrderSink
	trackingCode func() int
}

// Option configures an Engine
type Option func(*Engine)

// WithTrackingCodes overrides the confirmation code generator (used by tests)
func WithTrackingCodes(gen func() int) Option {
	return func(e *Engine) {
		e.trackingCode = gen
	}
}

// NewEngine creates an engine with the given channel policy and order sink
func NewEngine(policy Policy, sink OrderSink, opts ...Option) *Engine {
	e := &Engine{
		policy: policy,
		sink:   sink,
		trackingCode: func() int {
			return 1000 + rand.Intn(9000)
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Advance runs one step transition. Validation failures re-prompt and hold
// the step; they never return an error. The draft is mutated in place.
func (e *Engine) Advance(ctx context.Context, step Step, draft *OrderDraft, input Input) Result {
	switch step {
	case StepWelcome:
		return Result{
			NextStep: StepAskName,
			Messages: []string{msgWelcome, msgAskName},
		}

	case StepAskName:
		if !nameRe.MatchString(input.Text) {
			return stay(step, msgInvalidName)
		}
		draft.CustomerName = input.Text
		return Result{
			NextStep: StepAskType,
			Messages: []string{fmt.Sprintf(msgAskType, input.Text)},
		}

	case StepAskType:
		answer := strings.ToLower(input.Text)
		if e.policy.StrictTypeValidation {
			if answer != models.CustomerTypeBusiness && answer != models.CustomerTypeResidential {
				return stay(step, msgChooseType)
			}
			draft.CustomerType = answer
		} else {
			if input.Text == "" {
				return stay(step, msgChooseType)
			}
			if strings.Contains(answer, "empresa") {
				draft.CustomerType = models.CustomerTypeBusiness
			} else {
				draft.CustomerType = models.CustomerTypeResidential
			}
		}
		return Result{
			NextStep: StepAskWasteType,
			Messages: []string{msgAskWasteType},
		}

	case StepAskWasteType:
		if input.Text == "" {
			return stay(step, msgAskWasteType)
		}
		draft.WasteType = input.Text
		return Result{
			NextStep: StepAskLocation,
			Messages: []string{msgAskLocation},
		}

	case StepAskLocation:
		if input.Text == "" {
			return stay(step, msgAskLocation)
		}
		draft.Location = input.Text
		return Result{
			NextStep: StepAskVolume,
			Messages: []string{msgAskVolume},
		}

	case StepAskVolume:
		if input.Text == "" {
			return stay(step, msgAskVolume)
		}
		draft.Volume = input.Text
		return Result{
			NextStep: StepAskPhotos,
			Messages: []string{msgAskPhotos},
		}

	case StepAskPhotos:
		if len(input.MediaURLs) > 0 {
			draft.Photos = append(draft.Photos, input.MediaURLs...)
			if e.policy.AdvanceAfterPhoto {
				return Result{
					NextStep: StepConfirmOrder,
					Messages: []string{msgPhotoConfirm},
				}
			}
			return stay(step, msgPhotoReceived)
		}
		if strings.ToLower(input.Text) == skipKeyword {
			return Result{
				NextStep: StepConfirmOrder,
				Messages: []string{draft.Summary(), msgConfirmPrompt},
			}
		}
		return stay(step, msgPhotoOrSkip)

	case StepConfirmOrder:
		if len(input.MediaURLs) > 0 {
			draft.Photos = append(draft.Photos, input.MediaURLs...)
			return stay(step, msgPhotoAdded)
		}
		if e.isConfirmation(input.Text) {
			confirmation := e.finalizeOrder(ctx, draft)
			draft.Reset()
			return Result{
				NextStep: StepWelcome,
				Messages: []string{confirmation},
				Terminal: true,
			}
		}
		return stay(step, msgConfirmReminder)

	default:
		return stay(step, msgFallback)
	}
}

func (e *Engine) isConfirmation(text string) bool {
	answer := strings.ToLower(text)
	for _, keyword := range e.policy.ConfirmKeywords {
		if answer == keyword {
			return true
		}
	}
	return false
}

// finalizeOrder persists the draft through the sink. Persistence failures are
// logged for the operator and swallowed from the user's perspective; the
// fallback sink is expected to have already degraded to local storage.
func (e *Engine) finalizeOrder(ctx context.Context, draft *OrderDraft) string {
	customer, err := e.sink.EnsureCustomer(ctx, draft.CustomerName, draft.CustomerType, draft.Location)
	if err != nil {
		log.Printf("⚠️  Failed to save customer for %s: %v", draft.CustomerName, err)
	} else if _, err := e.sink.CreateOrder(ctx, draft, customer.ID); err != nil {
		log.Printf("⚠️  Failed to save order for %s: %v", draft.CustomerName, err)
	}

	message := msgOrderConfirmed
	if e.policy.IncludeTrackingCode {
		message += " " + fmt.Sprintf(msgTrackingCode, e.trackingCode())
	}
	return message
}

func stay(step Step, message string) Result {
	return Result{
		NextStep: step,
		Messages: []string{message},
	}
}
