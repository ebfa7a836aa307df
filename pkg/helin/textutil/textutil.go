package textutil

import (
	"regexp"
	"strconv"
	"strings"

	"yatta-helin-be/pkg/store"
)

// Turkish diacritics folded before keyword matching so "ödeme" and "odeme"
// hit the same keyword.
var diacriticReplacer = strings.NewReplacer(
	"ğ", "g", "Ğ", "g",
	"ü", "u", "Ü", "u",
	"ş", "s", "Ş", "s",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ç", "c", "Ç", "c",
)

// Normalize lower-cases, folds Turkish diacritics and trims the message.
// All keyword matching happens on normalized text.
func Normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(diacriticReplacer.Replace(text)))
}

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ismim\s+([A-Za-zÇĞİÖŞÜçğıöşü]+)`),
	regexp.MustCompile(`(?i)\bben\s+([A-Za-zÇĞİÖŞÜçğıöşü]+)`),
	regexp.MustCompile(`(?i)ad[ıi]m\s+([A-Za-zÇĞİÖŞÜçğıöşü]+)`),
}

// Words that follow "ben" without being a name ("ben rezervasyon yaptırmak
// istiyorum"). A capture hitting this set is discarded.
var nameStopwords = map[string]bool{
	"rezervasyon": true, "fiyat": true, "bilgi": true, "yat": true,
	"tur": true, "tekne": true, "odeme": true, "iptal": true,
	"sadece": true, "simdi": true, "bugun": true, "yarin": true,
	"size": true, "sizden": true, "musteri": true, "randevu": true,
}

// ExtractUserName pulls a self-introduced name out of the message
// ("ismim Deniz", "ben Deniz", "adım Deniz"). Returns "" when none found.
func ExtractUserName(message string) string {
	for _, pattern := range namePatterns {
		match := pattern.FindStringSubmatch(message)
		if len(match) < 2 {
			continue
		}
		candidate := match[1]
		if nameStopwords[Normalize(candidate)] {
			continue
		}
		// Title-case: ilk harf büyük
		runes := []rune(strings.ToLower(candidate))
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		return string(runes)
	}
	return ""
}

var onlyNamePattern = regexp.MustCompile(`^(ismim|ben|adim)\s+[a-z]+$`)

// IsOnlyNameMessage reports whether the message is a bare name introduction
// and nothing else.
func IsOnlyNameMessage(message, detectedName string) bool {
	if detectedName == "" {
		return false
	}
	return onlyNamePattern.MatchString(Normalize(message))
}

// ExtractService maps the message to one of the known service slugs,
// or "" when no service vocabulary is present.
func ExtractService(message string) string {
	msg := Normalize(message)

	switch {
	case strings.Contains(msg, "evlilik"), strings.Contains(msg, "teklif"), strings.Contains(msg, "evlenme"):
		return store.ServiceProposal
	case strings.Contains(msg, "dogum"), strings.Contains(msg, "kutlama"), strings.Contains(msg, "dogumgunu"):
		return store.ServiceBirthday
	case strings.Contains(msg, "yat"), strings.Contains(msg, "tur"), strings.Contains(msg, "tekne"),
		strings.Contains(msg, "kiralama"), strings.Contains(msg, "gezi"):
		return store.ServiceYachtTour
	}
	return ""
}

var (
	phonePattern   = regexp.MustCompile(`\b0?5\d{2}[\s.-]?\d{3}[\s.-]?\d{2}[\s.-]?\d{2}\b`)
	numericDate    = regexp.MustCompile(`\b(\d{1,2})[./](\d{1,2})(?:[./](\d{2,4}))?\b`)
	monthNameDate  = regexp.MustCompile(`\b(\d{1,2})\s+(ocak|subat|mart|nisan|mayis|haziran|temmuz|agustos|eylul|ekim|kasim|aralik)\b`)
	clockTime      = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	spokenTime     = regexp.MustCompile(`\bsaat\s+(\d{1,2})\b`)
	peoplePattern  = regexp.MustCompile(`\b(\d+)\s*kisi\b`)
	nonPhoneDigits = regexp.MustCompile(`[^\d]`)
)

// ExtractSlots pulls reservation slots (date, time, people, phone) out of a
// single message. The phone number is matched first and masked so its digit
// groups cannot be re-read as a date or a head count.
func ExtractSlots(message string) store.ReservationDraft {
	msg := Normalize(message)
	var draft store.ReservationDraft

	if phone := phonePattern.FindString(msg); phone != "" {
		draft.Phone = nonPhoneDigits.ReplaceAllString(phone, "")
		msg = strings.Replace(msg, phone, " ", 1)
	}

	if t := clockTime.FindString(msg); t != "" {
		draft.Time = t
		msg = strings.Replace(msg, t, " ", 1)
	} else if m := spokenTime.FindStringSubmatch(msg); len(m) == 2 {
		draft.Time = m[1] + ":00"
		msg = strings.Replace(msg, m[0], " ", 1)
	}

	if d := monthNameDate.FindString(msg); d != "" {
		draft.Date = d
	} else if d := numericDate.FindString(msg); d != "" {
		draft.Date = d
	} else if strings.Contains(msg, "yarin") {
		draft.Date = "yarin"
	} else if strings.Contains(msg, "bugun") {
		draft.Date = "bugun"
	}

	if m := peoplePattern.FindStringSubmatch(msg); len(m) == 2 {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			draft.People = n
		}
	}

	return draft
}

// ContainsAny reports whether the normalized message contains any of the
// given normalized keywords.
func ContainsAny(normalizedMsg string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(normalizedMsg, k) {
			return true
		}
	}
	return false
}
