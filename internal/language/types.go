package language

// Language describes one supported conversation language.
type Language struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Native string `json:"native"`
}

// Supported is the fixed language set, English first.
var Supported = []Language{
	{Code: "en", Name: "English", Native: "English"},
	{Code: "es", Name: "Spanish", Native: "Español"},
	{Code: "fr", Name: "French", Native: "Français"},
	{Code: "de", Name: "German", Native: "Deutsch"},
	{Code: "zh", Name: "Chinese", Native: "中文"},
	{Code: "ja", Name: "Japanese", Native: "日本語"},
	{Code: "pt", Name: "Portuguese", Native: "Português"},
	{Code: "lt", Name: "Lithuanian", Native: "Lietuvių"},
	{Code: "it", Name: "Italian", Native: "Italiano"},
	{Code: "ko", Name: "Korean", Native: "한국어"},
}

var supportedByCode = func() map[string]Language {
	m := make(map[string]Language, len(Supported))
	for _, l := range Supported {
		m[l.Code] = l
	}
	return m
}()

// IsSupported reports whether code names a supported language.
func IsSupported(code string) bool {
	_, ok := supportedByCode[code]
	return ok
}

// QueryResult is the outcome of normalizing an inbound message.
type QueryResult struct {
	OriginalMessage  string
	DetectedLanguage string
	LanguageName     string
	EnglishQuery     string
	NeedsTranslation bool
}
