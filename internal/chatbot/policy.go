package chatbot

// Policy captures the intentional behavior differences between delivery
// channels. Both channels share the same state machine; everything that may
// vary is an explicit knob here.
type Policy struct {
	// StrictTypeValidation requires the answer at ask_type to be exactly
	// "empresarial" or "residencial" (case-insensitive). When false the
	// engine classifies any answer: text containing "empresa" means business,
	// anything else residential.
	StrictTypeValidation bool

	// ConfirmKeywords are the answers accepted at confirm_order to finalize
	// the order.
	ConfirmKeywords []string

	// AdvanceAfterPhoto moves the conversation to confirm_order as soon as
	// the first photo arrives at ask_photos. When false the user must type
	// the skip keyword to move on.
	AdvanceAfterPhoto bool

	// IncludeTrackingCode appends a cosmetic 4-digit code to the confirmation
	// message. The code is not persisted.
	IncludeTrackingCode bool
}

// WebPolicy is the behavior of the in-browser chat widget
func WebPolicy() Policy {
	return Policy{
		StrictTypeValidation: true,
		ConfirmKeywords:      []string{"confirmar"},
		AdvanceAfterPhoto:    false,
		IncludeTrackingCode:  false,
	}
}

// WhatsAppPolicy is the behavior of the WhatsApp channel
func WhatsAppPolicy() Policy {
	return Policy{
		StrictTypeValidation: true,
		ConfirmKeywords:      []string{"confirmar", "sim"},
		AdvanceAfterPhoto:    true,
		IncludeTrackingCode:  true,
	}
}
