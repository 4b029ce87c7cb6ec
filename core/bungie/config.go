package bungie

// Config holds configuration for the Bungie.net data source.
type Config struct {
	// BaseURL is the root of the Bungie.net API and content host.
	BaseURL string `mapstructure:"base_url" default:"https://www.bungie.net"`
	// APIKey is the Bungie.net application API key sent as X-API-Key.
	APIKey string `mapstructure:"api_key" default:""`
	// Language selects the localized manifest component paths.
	Language string `mapstructure:"language" default:"en"`
	// AuxBaseURL is the root of the auxiliary community data files
	// (watermark/season/event/craftable lookups).
	AuxBaseURL string `mapstructure:"aux_base_url" default:"https://raw.githubusercontent.com/DestinyItemManager/d2-additional-info/master/output"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}

// Languages supported by the manifest's localized component paths.
const (
	LanguageEnglish  = "en"
	LanguageFrench   = "fr"
	LanguageGerman   = "de"
	LanguageItalian  = "it"
	LanguageJapanese = "ja"
	LanguageKorean   = "ko"
	LanguagePolish   = "pl"
	LanguageRussian  = "ru"
	LanguageSpanish  = "es"
)

// IsValidLanguage checks if the configured language is one the manifest publishes.
func (c Config) IsValidLanguage() bool {
	switch c.Language {
	case LanguageEnglish, LanguageFrench, LanguageGerman, LanguageItalian,
		LanguageJapanese, LanguageKorean, LanguagePolish, LanguageRussian, LanguageSpanish:
		return true
	default:
		return false
	}
}
