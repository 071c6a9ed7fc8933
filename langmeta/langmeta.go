// Package langmeta lists the languages the translation engines accept,
// with the display metadata (native name, emoji flag) the CLI shows for
// them.
package langmeta

import "strings"

// Language is one engine-accepted target language.
type Language struct {
	// Code is the code handed to the engines ("fr", "pt", "zh-CN").
	Code string
	// Name is the language's native name.
	Name string
	// Flag is the emoji flag printed next to the code.
	Flag string
}

// supported is kept in code order. Regional variants appear only where
// the engines actually distinguish them: Chinese script and Brazilian
// Portuguese. Other variants (en-GB, fr-CA, ...) resolve to their base
// language.
var supported = []Language{
	{"af", "Afrikaans", "🇿🇦"},
	{"am", "አማርኛ", "🇪🇹"},
	{"ar", "العربية", "🇸🇦"},
	{"az", "Azərbaycanca", "🇦🇿"},
	{"be", "Беларуская", "🇧🇾"},
	{"bg", "Български", "🇧🇬"},
	{"bn", "বাংলা", "🇧🇩"},
	{"bs", "Bosanski", "🇧🇦"},
	{"ca", "Català", "🇪🇸"},
	{"cs", "Čeština", "🇨🇿"},
	{"cy", "Cymraeg", "🇬🇧"},
	{"da", "Dansk", "🇩🇰"},
	{"de", "Deutsch", "🇩🇪"},
	{"el", "Ελληνικά", "🇬🇷"},
	{"en", "English", "🇺🇸"},
	{"es", "Español", "🇪🇸"},
	{"et", "Eesti", "🇪🇪"},
	{"eu", "Euskara", "🇪🇸"},
	{"fa", "فارسی", "🇮🇷"},
	{"fi", "Suomi", "🇫🇮"},
	{"fr", "Français", "🇫🇷"},
	{"ga", "Gaeilge", "🇮🇪"},
	{"gl", "Galego", "🇪🇸"},
	{"gu", "ગુજરાતી", "🇮🇳"},
	{"he", "עברית", "🇮🇱"},
	{"hi", "हिन्दी", "🇮🇳"},
	{"hr", "Hrvatski", "🇭🇷"},
	{"hu", "Magyar", "🇭🇺"},
	{"hy", "Հայերեն", "🇦🇲"},
	{"id", "Bahasa Indonesia", "🇮🇩"},
	{"is", "Íslenska", "🇮🇸"},
	{"it", "Italiano", "🇮🇹"},
	{"ja", "日本語", "🇯🇵"},
	{"ka", "ქართული", "🇬🇪"},
	{"kk", "Қазақ тілі", "🇰🇿"},
	{"km", "ខ្មែរ", "🇰🇭"},
	{"ko", "한국어", "🇰🇷"},
	{"lo", "ລາວ", "🇱🇦"},
	{"lt", "Lietuvių", "🇱🇹"},
	{"lv", "Latviešu", "🇱🇻"},
	{"mk", "Македонски", "🇲🇰"},
	{"ml", "മലയാളം", "🇮🇳"},
	{"mn", "Монгол", "🇲🇳"},
	{"mr", "मराठी", "🇮🇳"},
	{"ms", "Bahasa Melayu", "🇲🇾"},
	{"mt", "Malti", "🇲🇹"},
	{"my", "မြန်မာ", "🇲🇲"},
	{"nb", "Norsk bokmål", "🇳🇴"},
	{"ne", "नेपाली", "🇳🇵"},
	{"nl", "Nederlands", "🇳🇱"},
	{"no", "Norsk", "🇳🇴"},
	{"pa", "ਪੰਜਾਬੀ", "🇮🇳"},
	{"pl", "Polski", "🇵🇱"},
	{"ps", "پښتو", "🇦🇫"},
	{"pt", "Português", "🇵🇹"},
	{"pt-BR", "Português (Brasil)", "🇧🇷"},
	{"ro", "Română", "🇷🇴"},
	{"ru", "Русский", "🇷🇺"},
	{"si", "සිංහල", "🇱🇰"},
	{"sk", "Slovenčina", "🇸🇰"},
	{"sl", "Slovenščina", "🇸🇮"},
	{"sq", "Shqip", "🇦🇱"},
	{"sr", "Српски", "🇷🇸"},
	{"sv", "Svenska", "🇸🇪"},
	{"sw", "Kiswahili", "🇹🇿"},
	{"ta", "தமிழ்", "🇮🇳"},
	{"te", "తెలుగు", "🇮🇳"},
	{"th", "ไทย", "🇹🇭"},
	{"tr", "Türkçe", "🇹🇷"},
	{"uk", "Українська", "🇺🇦"},
	{"ur", "اردو", "🇵🇰"},
	{"uz", "O'zbek", "🇺🇿"},
	{"vi", "Tiếng Việt", "🇻🇳"},
	{"xh", "isiXhosa", "🇿🇦"},
	{"yo", "Yorùbá", "🇳🇬"},
	{"zh", "中文", "🇨🇳"},
	{"zh-CN", "简体中文", "🇨🇳"},
	{"zh-TW", "繁體中文", "🇹🇼"},
	{"zu", "isiZulu", "🇿🇦"},
}

var byCode = func() map[string]Language {
	m := make(map[string]Language, len(supported))
	for _, l := range supported {
		m[l.Code] = l
	}
	return m
}()

// All returns the supported languages in code order. The slice is a
// copy; callers may reorder it.
func All() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// normalize maps user spellings (pt_br, " EN-us ") onto registry
// casing: lower-case language, upper-case region, dash separator.
func normalize(code string) string {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "" {
		return ""
	}
	parts := strings.Split(code, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) >= 2 {
		parts[1] = strings.ToUpper(parts[1])
	}
	return strings.Join(parts, "-")
}

// Resolve maps a language code onto its entry: exact match first, then
// the normalized spelling, then the base language of an unlisted
// regional variant. Unknown codes come back as bare entries so callers
// can still print something sensible.
func Resolve(code string) Language {
	if l, ok := byCode[code]; ok {
		return l
	}
	n := normalize(code)
	if l, ok := byCode[n]; ok {
		return l
	}
	if base, _, found := strings.Cut(n, "-"); found {
		if l, ok := byCode[base]; ok {
			return l
		}
	}
	return Language{Code: code, Name: code}
}
