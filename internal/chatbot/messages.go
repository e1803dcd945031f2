package chatbot

// Bot message texts (PT-BR)
const (
	msgWelcome = "Olá! Sou o assistente virtual da URBTECH. Como podemos te ajudar hoje com a coleta de resíduos eletrônicos?"
	msgAskName = "Para começarmos, poderia me informar seu nome?"

	msgInvalidName = "Nome inválido. Use apenas letras e espaços."
	msgAskType     = "Obrigado, %s! O resíduo que você deseja descartar é empresarial ou residencial?"
	msgChooseType  = "Por favor, escolha 'empresarial' ou 'residencial'."

	msgAskWasteType = "Qual é o tipo de resíduo eletrônico? (Ex.: baterias, computadores)"
	msgAskLocation  = "Qual é o endereço para coleta?"
	msgAskVolume    = "Qual o volume aproximado? (Ex.: 50kg, 10 unidades)"
	msgAskPhotos    = "Por favor, envie uma foto do resíduo ou digite 'pular' para finalizar sem foto."

	msgPhotoReceived = "Foto recebida! Envie mais fotos ou digite 'pular' para ver o resumo do pedido."
	msgPhotoConfirm  = "Obrigado pela foto! Digite 'confirmar' para finalizar seu pedido ou envie mais fotos."
	msgPhotoAdded    = "Foto adicionada! Digite 'confirmar' para finalizar seu pedido ou envie mais fotos."
	msgPhotoOrSkip   = "Por favor, envie uma foto ou digite 'pular' para continuar sem foto."

	msgConfirmPrompt   = "Os dados estão corretos? Digite 'confirmar' para finalizar o pedido."
	msgConfirmReminder = "Digite 'confirmar' para finalizar o pedido ou envie mais fotos."
	msgOrderConfirmed  = "Pedido confirmado! Entraremos em contato para agendar a coleta. Obrigado por usar a URBTECH! 🌱"
	msgTrackingCode    = "Seu código de acompanhamento é #%04d."

	msgFallback = "Desculpe, não entendi. Por favor, responda conforme as opções fornecidas."
)

const skipKeyword = "pular"
