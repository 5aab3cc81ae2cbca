package extract

import (
	"regexp"
	"strings"
)

var (
	nameLabelRe  = regexp.MustCompile(`(?:姓名|名字)\s*[:：]\s*([^\s,，、:：]{1,10})`)
	phoneRe      = regexp.MustCompile(`1[3-9]\d{9}|\d{3}[-\s]\d{4}[-\s]\d{4}`)
	emailRe      = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	experienceRe = regexp.MustCompile(`(\d{1,2})\s*年(?:[^\n]{0,20}?)经验`)
	schoolRe     = regexp.MustCompile(`[\p{Han}]{2,15}(?:大学|学院|学校)`)
)

// Name finds the candidate's name. It first looks for an explicit 姓名/名字
// label; failing that, it takes the first short non-header line near the top
// of the document. Returns "" when nothing qualifies so the caller can apply
// its own fallback (filename derivation or the sentinel).
func Name(text string) string {
	if m := nameLabelRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	lines := strings.Split(text, "\n")
	limit := min(len(lines), 5)
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || len([]rune(line)) >= 10 {
			continue
		}
		if containsHeaderWord(line) {
			continue
		}
		return line
	}
	return ""
}

// containsHeaderWord reports whether a line holds a generic header term
// (简历, 求职, resume...) and therefore cannot be a person's name.
func containsHeaderWord(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range nameHeaderWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// Phone finds the first phone number: an 11-digit mobile number or a
// hyphen/space-delimited 3-4-4 grouping. Returns "" when absent.
func Phone(text string) string {
	return phoneRe.FindString(text)
}

// Email finds the first email-shaped token. Returns "" when absent.
func Email(text string) string {
	return emailRe.FindString(text)
}

// Title returns the first title-vocabulary entry contained in the text, or
// DefaultTitle when none appears.
func Title(text string) string {
	for _, title := range titleVocabulary {
		if strings.Contains(text, title) {
			return title
		}
	}
	return DefaultTitle
}

// Skills filters the skill vocabulary by case-insensitive substring
// containment in the text. Each keyword appears at most once regardless of
// how often it occurs, and the result order is vocabulary scan order, not
// text order. Returns an empty (non-nil) slice when nothing matches.
func Skills(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// ExperienceYears captures a "N年…经验" phrase and returns the year count as
// a descriptor like "5年". Returns the NotDetected sentinel when absent; the
// descriptor stays free-form because source text uses inconsistent units.
func ExperienceYears(text string) string {
	m := experienceRe.FindStringSubmatch(text)
	if m == nil {
		return NotDetected
	}
	return m[1] + "年"
}

// Education returns the first degree-vocabulary entry found in the text,
// with the first school name appended when one is present, e.g.
// "本科（清华大学）". Returns the NotDetected sentinel when no degree keyword
// appears.
func Education(text string) string {
	degree := ""
	for _, level := range educationVocabulary {
		if strings.Contains(text, level) {
			degree = level
			break
		}
	}
	if degree == "" {
		return NotDetected
	}
	if school := schoolRe.FindString(text); school != "" {
		return degree + "（" + school + "）"
	}
	return degree
}
