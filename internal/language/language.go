package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type entry struct {
	code2   string // ISO 639-1 (2-letter)
	code3   string // ISO 639-2 primary (3-letter)
	display string
}

// Languages the charset detector commonly reports for subtitle files.
var languages = []entry{
	{"en", "eng", "English"},
	{"es", "spa", "Spanish"},
	{"fr", "fra", "French"},
	{"de", "deu", "German"},
	{"it", "ita", "Italian"},
	{"pt", "por", "Portuguese"},
	{"nl", "nld", "Dutch"},
	{"sv", "swe", "Swedish"},
	{"da", "dan", "Danish"},
	{"no", "nor", "Norwegian"},
	{"fi", "fin", "Finnish"},
	{"pl", "pol", "Polish"},
	{"cs", "ces", "Czech"},
	{"hu", "hun", "Hungarian"},
	{"ro", "ron", "Romanian"},
	{"tr", "tur", "Turkish"},
	{"el", "ell", "Greek"},
	{"ru", "rus", "Russian"},
	{"he", "heb", "Hebrew"},
	{"ar", "ara", "Arabic"},
	{"ja", "jpn", "Japanese"},
	{"ko", "kor", "Korean"},
	{"zh", "zho", "Chinese"},
}

var byCode map[string]*entry

func init() {
	byCode = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byCode[e.code2] = e
		byCode[e.code3] = e
	}
}

// DisplayName returns a human-readable language name for an ISO 639 code.
// Codes outside the built-in table are resolved through the CLDR names;
// anything unparseable is returned upper-cased. Empty input yields "".
func DisplayName(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if e, ok := byCode[code]; ok {
		return e.display
	}
	tag, err := xlanguage.Parse(code)
	if err == nil {
		if name := display.English.Languages().Name(tag); name != "" {
			return name
		}
	}
	return strings.ToUpper(code)
}
