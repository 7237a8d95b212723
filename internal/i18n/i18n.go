package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Translator handles message translation for supported languages.
type Translator struct {
	messages map[string]map[string]string
	fallback string
	mu       sync.RWMutex
}

var (
	defaultTranslator *Translator
	once              sync.Once
)

// GetTranslator returns the singleton translator instance.
func GetTranslator() *Translator {
	once.Do(func() {
		defaultTranslator = &Translator{
			messages: defaultMessages(),
			fallback: "en",
		}
	})
	return defaultTranslator
}

// Translate returns the message for the given key in the requested language.
// Falls back to English when the language or key is missing, and to the key
// itself when no translation exists at all.
func (t *Translator) Translate(lang, key string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	lang = normalizeLang(lang)

	if msgs, ok := t.messages[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}

	if msgs, ok := t.messages[t.fallback]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}

	return key
}

// SupportedLanguages returns the list of languages with translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.messages))
	for lang := range t.messages {
		langs = append(langs, lang)
	}
	return langs
}

// normalizeLang maps an Accept-Language value to a supported language code.
func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "en"
	}
	// "pt-BR;q=0.9" -> "pt"
	if idx := strings.IndexAny(lang, "-;,"); idx > 0 {
		lang = lang[:idx]
	}
	return lang
}

// GetLocale returns the request's preferred language based on its
// Accept-Language header.
func GetLocale(c *gin.Context) string {
	return ParseAcceptLanguage(c.GetHeader("Accept-Language"))
}

// ParseAcceptLanguage extracts the preferred language from an
// Accept-Language header value.
func ParseAcceptLanguage(header string) string {
	if header == "" {
		return "en"
	}
	parts := strings.Split(header, ",")
	return normalizeLang(parts[0])
}

func defaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyInternalError:      "An internal error occurred",
			ErrKeyUnauthorized:       "Authentication required",
			ErrKeyInvalidCredentials: "Invalid email or password",
			ErrKeyAPIKeyRequired:     "API key is required",
			ErrKeyInvalidAPIKey:      "Invalid API key",
			ErrKeyForbidden:          "You do not have permission to perform this action",
			ErrKeyNotFound:           "Resource not found",
			ErrKeyBoxNotFound:        "No box matches the scanned barcode",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
			ErrKeyConflict:           "The request conflicts with the current state",
			ErrKeyValidationBarcode:  "Barcode must not be empty",
			ErrKeyValidationBox:      "Box identifier, display name and weight are invalid",
			ErrKeyInvalidToken:       "Invalid or expired token",
			ErrKeyTokenRequired:      "Authentication token is required",
			ErrKeyTimeout:            "The request timed out",
			ErrKeyUserExists:         "A user with this email already exists",
		},
		"pt": {
			ErrKeyInvalidRequest:     "Requisição inválida",
			ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
			ErrKeyInternalError:      "Ocorreu um erro interno",
			ErrKeyUnauthorized:       "Autenticação necessária",
			ErrKeyInvalidCredentials: "E-mail ou senha inválidos",
			ErrKeyAPIKeyRequired:     "Chave de API é obrigatória",
			ErrKeyInvalidAPIKey:      "Chave de API inválida",
			ErrKeyForbidden:          "Você não tem permissão para executar esta ação",
			ErrKeyNotFound:           "Recurso não encontrado",
			ErrKeyBoxNotFound:        "Nenhuma caixa corresponde ao código de barras lido",
			ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
			ErrKeyConflict:           "A requisição conflita com o estado atual",
			ErrKeyValidationBarcode:  "O código de barras não pode ser vazio",
			ErrKeyValidationBox:      "Identificador, nome de exibição e peso da caixa são inválidos",
			ErrKeyInvalidToken:       "Token inválido ou expirado",
			ErrKeyTokenRequired:      "Token de autenticação é obrigatório",
			ErrKeyTimeout:            "A requisição excedeu o tempo limite",
			ErrKeyUserExists:         "Já existe um usuário com este e-mail",
		},
	}
}
