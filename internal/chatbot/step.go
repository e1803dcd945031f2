package chatbot

// Step identifies the current position in the intake conversation
type Step string

const (
	StepWelcome      Step = "welcome"
	StepAskName      Step = "ask_name"
	StepAskType      Step = "ask_type"
	StepAskWasteType Step = "ask_waste_type"
	StepAskLocation  Step = "ask_location"
	StepAskVolume    Step = "ask_volume"
	StepAskPhotos    Step = "ask_photos"
	StepConfirmOrder Step = "confirm_order"
)
