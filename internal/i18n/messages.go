package i18n

var messages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:       "Invalid request",
		ErrKeyInvalidRequestBody:   "Invalid request body",
		ErrKeyInternalError:        "An unexpected error occurred",
		ErrKeyUnauthorized:         "Unauthorized",
		ErrKeyAPIKeyRequired:       "API key is required",
		ErrKeyInvalidAPIKey:        "Invalid API key",
		ErrKeyNotFound:             "Not found",
		ErrKeyRateLimitExceeded:    "Too many requests, please try again later",
		ErrKeyConflict:             "Conflict",
		ErrKeyTimeout:              "Request timed out",
		ErrKeyServiceUnavailable:   "Service temporarily unavailable, please try again later",
		ErrKeyUnknownItem:          "The order contains items that are not in the price list",
		ErrKeyInvalidQuantity:      "Quantities must be whole numbers of zero or more",
		ErrKeyCapacityExceeded:     "The order is too large to be priced",
		ErrKeyInfeasible:           "No combination of packs can serve this order",
		ErrKeySolverData:           "The price could not be computed",
		ErrKeyClientNameTooLong:    "Client name is too long",
		ErrKeyReceiptNotFound:      "Receipt not found or expired",
		ErrKeyReceiptTokenRequired: "A download token is required",
		ErrKeyInvalidReceiptToken:  "Invalid or expired download link",
		ErrKeyRenderFailed:         "The receipt could not be generated",
		SuccessKeyQuoteCalculated:  "Quote calculated successfully",
	},
	"pt": {
		ErrKeyInvalidRequest:       "Pedido inválido",
		ErrKeyInvalidRequestBody:   "Corpo do pedido inválido",
		ErrKeyInternalError:        "Ocorreu um erro inesperado",
		ErrKeyUnauthorized:         "Não autorizado",
		ErrKeyAPIKeyRequired:       "A chave de API é obrigatória",
		ErrKeyInvalidAPIKey:        "Chave de API inválida",
		ErrKeyNotFound:             "Não encontrado",
		ErrKeyRateLimitExceeded:    "Demasiados pedidos, tente novamente mais tarde",
		ErrKeyConflict:             "Conflito",
		ErrKeyTimeout:              "O pedido excedeu o tempo limite",
		ErrKeyServiceUnavailable:   "Serviço temporariamente indisponível, tente novamente mais tarde",
		ErrKeyUnknownItem:          "A encomenda contém artigos que não constam da tabela de preços",
		ErrKeyInvalidQuantity:      "As quantidades devem ser números inteiros iguais ou superiores a zero",
		ErrKeyCapacityExceeded:     "A encomenda é demasiado grande para ser orçamentada",
		ErrKeyInfeasible:           "Nenhuma combinação de packs serve esta encomenda",
		ErrKeySolverData:           "Não foi possível calcular o preço",
		ErrKeyClientNameTooLong:    "O nome do cliente é demasiado longo",
		ErrKeyReceiptNotFound:      "Recibo não encontrado ou expirado",
		ErrKeyReceiptTokenRequired: "É necessário um token de download",
		ErrKeyInvalidReceiptToken:  "Link de download inválido ou expirado",
		ErrKeyRenderFailed:         "Não foi possível gerar o recibo",
		SuccessKeyQuoteCalculated:  "Orçamento calculado com sucesso",
	},
	"nl": {
		ErrKeyInvalidRequest:       "Ongeldig verzoek",
		ErrKeyInvalidRequestBody:   "Ongeldige aanvraag body",
		ErrKeyInternalError:        "Er is een onverwachte fout opgetreden",
		ErrKeyUnauthorized:         "Niet geautoriseerd",
		ErrKeyAPIKeyRequired:       "API-sleutel is vereist",
		ErrKeyInvalidAPIKey:        "Ongeldige API-sleutel",
		ErrKeyNotFound:             "Niet gevonden",
		ErrKeyRateLimitExceeded:    "Te veel verzoeken, probeer het later opnieuw",
		ErrKeyConflict:             "Conflict",
		ErrKeyTimeout:              "Verzoek is verlopen",
		ErrKeyServiceUnavailable:   "Service tijdelijk niet beschikbaar, probeer het later opnieuw",
		ErrKeyUnknownItem:          "De bestelling bevat artikelen die niet in de prijslijst staan",
		ErrKeyInvalidQuantity:      "Aantallen moeten gehele getallen van nul of meer zijn",
		ErrKeyCapacityExceeded:     "De bestelling is te groot om te berekenen",
		ErrKeyInfeasible:           "Geen combinatie van pakketten past bij deze bestelling",
		ErrKeySolverData:           "De prijs kon niet worden berekend",
		ErrKeyClientNameTooLong:    "Klantnaam is te lang",
		ErrKeyReceiptNotFound:      "Bon niet gevonden of verlopen",
		ErrKeyReceiptTokenRequired: "Een downloadtoken is vereist",
		ErrKeyInvalidReceiptToken:  "Ongeldige of verlopen downloadlink",
		ErrKeyRenderFailed:         "De bon kon niet worden gemaakt",
		SuccessKeyQuoteCalculated:  "Offerte succesvol berekend",
	},
}
