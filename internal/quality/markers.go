package quality

import "strings"

const DefaultLanguage = "en"

type LanguageMarkerSet struct {
	Language string   `json:"language"`
	Name     string   `json:"name"`
	Markers  []string `json:"markers"`
}

// languageMarkers is ordered by language code. Detection ties resolve to the
// earliest entry, so this order is part of the observable behaviour.
var languageMarkers = []LanguageMarkerSet{
	{Language: "af", Name: "Afrikaans", Markers: []string{"lekker", "baie dankie", "dankie", "asseblief", "goeie more", "hoe gaan dit", "ja", "jol", "ag man", "sommer", "boet"}},
	{Language: "en", Name: "South African English", Markers: []string{"lekker", "howzit", "eish", "braai", "now now", "just now", "sharp sharp", "bakkie", "mzansi", "ayoba", "jozi", "chommie", "shebeen"}},
	{Language: "nr", Name: "isiNdebele", Markers: []string{"lotjhani", "ngiyathokoza", "ninjani", "salani kuhle", "kuhle khulu", "abantwana"}},
	{Language: "nso", Name: "Sepedi", Markers: []string{"thobela", "re a leboga", "o phela bjang", "ke phela gabotse", "sepedi", "ke a go rata"}},
	{Language: "ss", Name: "siSwati", Markers: []string{"sikhona", "emaswati", "salakahle", "ngiyajabula", "kunjani make", "umntfwana"}},
	{Language: "st", Name: "Sesotho", Markers: []string{"dumela", "kea leboha", "ke a leboha", "o kae", "ke teng", "khotso", "sala hantle", "ntate"}},
	{Language: "tn", Name: "Setswana", Markers: []string{"ke a leboga", "dumelang", "o tsogile jang", "go siame", "tsamaya sentle", "ke itumetse"}},
	{Language: "ts", Name: "Xitsonga", Markers: []string{"avuxeni", "inkomu", "ndza khensa", "u njhani", "hi swona", "xewani"}},
	{Language: "ve", Name: "Tshivenda", Markers: []string{"ndi a livhuwa", "vho vuwa hani", "ri khou livhuwa", "ndi matsheloni", "zwavhudi", "nwana"}},
	{Language: "xh", Name: "isiXhosa", Markers: []string{"molo", "molweni", "enkosi", "ndiyabulela", "camagu", "uxolo", "sala kakuhle", "ndiyakuthanda"}},
	{Language: "zu", Name: "isiZulu", Markers: []string{"sawubona", "ngiyabonga", "siyabonga", "yebo", "unjani", "kunjani", "sanibonani", "hamba kahle", "ngiyakuthanda", "ubuntu"}},
}

func markerSet(language string) (LanguageMarkerSet, bool) {
	code := strings.ToLower(strings.TrimSpace(language))
	for _, set := range languageMarkers {
		if set.Language == code {
			return set, true
		}
	}
	return LanguageMarkerSet{}, false
}

// MarkersFor returns the marker set for a language, falling back to English.
func MarkersFor(language string) LanguageMarkerSet {
	if set, ok := markerSet(language); ok {
		return set
	}
	set, _ := markerSet(DefaultLanguage)
	return set
}

func IsKnownLanguage(language string) bool {
	_, ok := markerSet(language)
	return ok
}

// LanguageName returns the display name for a language code, or the code itself when unknown.
func LanguageName(language string) string {
	if set, ok := markerSet(language); ok {
		return set.Name
	}
	return strings.TrimSpace(language)
}

func Languages() []LanguageMarkerSet {
	out := make([]LanguageMarkerSet, 0, len(languageMarkers))
	for _, set := range languageMarkers {
		markers := make([]string, len(set.Markers))
		copy(markers, set.Markers)
		set.Markers = markers
		out = append(out, set)
	}
	return out
}

func countMarkers(lowered string, markers []string) int {
	total := 0
	for _, marker := range markers {
		if strings.Contains(lowered, marker) {
			total++
		}
	}
	return total
}
