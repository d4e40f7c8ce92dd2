package language

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"python-docs-copilot/pkg/llmprovider"
	"python-docs-copilot/pkg/log"
)

// cacheCapacity bounds the detection and translation caches.
const cacheCapacity = 4096

// generator is the slice of the LLM manager the handler needs.
type generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type translationKey struct {
	textHash string
	source   string
	target   string
}

// Handler detects message language and translates between English and
// the supported set. Both directions degrade gracefully: any oracle
// failure falls back to English detection or the untranslated text.
type Handler struct {
	llm            generator
	logger         log.Logger
	detectionCache *lru.Cache[string, string]
	translations   *lru.Cache[translationKey, string]
}

// NewHandler creates a Handler backed by the given LLM.
func NewHandler(llm generator, logger log.Logger) (*Handler, error) {
	detectionCache, err := lru.New[string, string](cacheCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create detection cache: %w", err)
	}
	translations, err := lru.New[translationKey, string](cacheCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation cache: %w", err)
	}

	return &Handler{
		llm:            llm,
		logger:         logger,
		detectionCache: detectionCache,
		translations:   translations,
	}, nil
}

// DetectLanguage returns the language code of the text. Unknown codes
// and oracle failures resolve to "en", and that verdict is cached.
func (h *Handler) DetectLanguage(ctx context.Context, text string) string {
	cacheKey := hashText(prefix(text, 100))
	if code, ok := h.detectionCache.Get(cacheKey); ok {
		return code
	}

	codes := make([]string, len(Supported))
	for i, l := range Supported {
		codes[i] = l.Code
	}

	prompt := fmt.Sprintf(`Detect the language of the following text and return ONLY the ISO 639-1 language code (2 letters).

Supported codes: %s

Text: "%s"

Return only the 2-letter code, nothing else.`, strings.Join(codes, ", "), text)

	resp, err := h.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Text: prompt}},
		Temperature: 0,
	})
	if err != nil {
		h.logger.Warnf(ctx, "language detection failed, defaulting to en: %v", err)
		h.detectionCache.Add(cacheKey, "en")
		return "en"
	}

	code := strings.ToLower(strings.TrimSpace(resp.Text))
	if !IsSupported(code) {
		h.logger.Warnf(ctx, "invalid language code detected: %q, defaulting to en", code)
		code = "en"
	}

	h.detectionCache.Add(cacheKey, code)
	return code
}

// TranslateToEnglish translates the text from sourceLang to English.
// English input and oracle failures return the text unchanged.
func (h *Handler) TranslateToEnglish(ctx context.Context, text, sourceLang string) string {
	if sourceLang == "en" {
		return text
	}

	key := translationKey{textHash: hashText(text), source: sourceLang, target: "en"}
	if translated, ok := h.translations.Get(key); ok {
		return translated
	}

	sourceName := sourceLang
	if l, ok := supportedByCode[sourceLang]; ok {
		sourceName = l.Name
	}

	prompt := fmt.Sprintf(`Translate the following text from %s to English.
Return ONLY the translated text, nothing else.

Text to translate: "%s"

Translation:`, sourceName, text)

	resp, err := h.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Text: prompt}},
		Temperature: 0,
	})
	if err != nil {
		h.logger.Warnf(ctx, "translation to English failed, keeping original: %v", err)
		return text
	}

	translated := strings.TrimSpace(resp.Text)
	h.translations.Add(key, translated)
	return translated
}

// TranslateFromEnglish translates English text into targetLang, keeping
// markdown formatting and code identifiers intact. Failures return the
// English text unchanged.
func (h *Handler) TranslateFromEnglish(ctx context.Context, text, targetLang string) string {
	if targetLang == "en" {
		return text
	}

	key := translationKey{textHash: hashText(text), source: "en", target: targetLang}
	if translated, ok := h.translations.Get(key); ok {
		return translated
	}

	targetName := targetLang
	targetNative := targetLang
	if l, ok := supportedByCode[targetLang]; ok {
		targetName = l.Name
		targetNative = l.Native
	}

	prompt := fmt.Sprintf(`You are a professional translator. Translate the following English text to %[1]s (%[2]s).

IMPORTANT:
- You MUST translate the text to %[1]s, not keep it in English
- Maintain all markdown formatting (**, `+"`"+`, `+"```"+`, etc.)
- Keep code blocks and technical terms (like "pandas", "DataFrame", "pd.DataFrame()") unchanged
- Translate explanatory text and descriptions to %[1]s

English text:
%[3]s

%[1]s translation:`, targetName, targetNative, text)

	resp, err := h.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: "user", Text: prompt}},
		Temperature: 0,
	})
	if err != nil {
		h.logger.Warnf(ctx, "translation from English failed, keeping original: %v", err)
		return text
	}

	translated := strings.TrimSpace(resp.Text)
	h.translations.Add(key, translated)
	return translated
}

// ProcessQuery normalizes an inbound message to English. An explicit
// userLang skips detection; unsupported codes resolve to English.
func (h *Handler) ProcessQuery(ctx context.Context, message, userLang string) QueryResult {
	var detected string
	if userLang == "" {
		detected = h.DetectLanguage(ctx, message)
	} else if IsSupported(userLang) {
		detected = userLang
	} else {
		detected = "en"
	}

	englishQuery := h.TranslateToEnglish(ctx, message, detected)

	return QueryResult{
		OriginalMessage:  message,
		DetectedLanguage: detected,
		LanguageName:     supportedByCode[detected].Name,
		EnglishQuery:     englishQuery,
		NeedsTranslation: detected != "en",
	}
}

// ProcessResponse translates an English response into targetLang.
func (h *Handler) ProcessResponse(ctx context.Context, englishResponse, targetLang string) string {
	if targetLang == "en" {
		return englishResponse
	}
	return h.TranslateFromEnglish(ctx, englishResponse, targetLang)
}

// ClearCache drops all cached detections and translations.
func (h *Handler) ClearCache() {
	h.detectionCache.Purge()
	h.translations.Purge()
}

func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func prefix(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
