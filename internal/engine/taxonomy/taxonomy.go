package taxonomy

import (
	"regexp"
	"strings"
)

// ContainsAny is the matching primitive used by every taxonomy scan.
// It reports whether any trigger phrase occurs as a substring of text,
// case-insensitively. Matching is deliberately NOT word-boundary aware:
// a short trigger can match inside an unrelated longer word. That is the
// documented heuristic trade-off of the engine, not a bug to fix here.
func ContainsAny(text string, triggers []string) bool {
	lower := strings.ToLower(text)
	for _, trigger := range triggers {
		if strings.Contains(lower, strings.ToLower(trigger)) {
			return true
		}
	}
	return false
}

// StripPhrases removes every occurrence of each phrase from text via
// case-insensitive whole-phrase removal, then collapses runs of whitespace.
// Phrases are removed in slice order, so longer phrases must come first in
// the taxonomy tables to avoid leaving fragments behind.
func StripPhrases(text string, phrases []string) string {
	for _, phrase := range phrases {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
		text = re.ReplaceAllString(text, " ")
	}
	return strings.Join(strings.Fields(text), " ")
}

// Priority tiers, scanned in definition order. The first tier with a match
// wins, even when a lower tier also matches.
var (
	PriorityUrgent = []string{
		"urgent", "asap", "immediately", "critical", "right now",
		"عاجل", "مستعجل", "فوري", "ضروري", "حالا",
	}
	PriorityMedium = []string{
		"important", "soon", "today", "this week",
		"مهم", "قريبا", "قريباً", "اليوم", "هذا الأسبوع",
	}
	PriorityLow = []string{
		"later", "sometime", "whenever", "no rush",
		"لاحقا", "لاحقاً", "في وقت ما", "غير مستعجل",
	}
)

// MeetingTriggers feed the secondary priority heuristic and the
// medium-effort duration tier.
var MeetingTriggers = []string{
	"meeting", "call", "appointment", "interview",
	"اجتماع", "مكالمة", "موعد", "مقابلة",
}

// Relative-date phrase tiers. DayAfterTomorrow is scanned before Tomorrow:
// with substring matching, "day after tomorrow" would otherwise be shadowed
// by the "tomorrow" it contains.
var (
	DayAfterTomorrow = []string{
		"day after tomorrow", "بعد غد", "بعد بكرة",
	}
	Tomorrow = []string{
		"tomorrow", "غدا", "غداً", "بكرة",
	}
	NextWeek = []string{
		"next week", "الأسبوع القادم", "الاسبوع القادم", "الأسبوع المقبل",
	}
	NextMonth = []string{
		"next month", "الشهر القادم", "الشهر المقبل",
	}
)

// Duration tiers, scanned in definition order.
var (
	DurationQuick = []string{
		"quick", "quickly", "برق", "سريع", "بسرعة",
	}
	DurationMedium = []string{
		"meeting", "review", "report", "اجتماع", "مراجعة", "تقرير",
	}
	DurationLong = []string{
		"project", "develop", "development", "study", "research",
		"مشروع", "تطوير", "دراسة", "بحث",
	}
)

// Topic category tiers, scanned in definition order.
var (
	CategoryWork = []string{
		"work", "meeting", "project", "report", "client", "deadline",
		"عمل", "اجتماع", "مشروع", "تقرير", "عميل",
	}
	CategoryPersonal = []string{
		"family", "home", "shopping", "friend", "birthday",
		"عائلة", "منزل", "تسوق", "صديق", "شخصي",
	}
	CategoryStudy = []string{
		"study", "exam", "homework", "lecture", "course",
		"دراسة", "امتحان", "واجب", "محاضرة", "مذاكرة",
	}
	CategoryHealth = []string{
		"doctor", "gym", "exercise", "medicine", "workout",
		"طبيب", "رياضة", "تمرين", "دواء", "صحة",
	}
)

// Command verb tiers, scanned in definition order by the classifier.
// Longer phrases precede their prefixes for the sake of StripPhrases.
var (
	CommandAdd = []string{
		"add task", "new task", "create task",
		"أضف مهمة", "مهمة جديدة", "أنشئ مهمة",
		"add", "create", "أضف",
	}
	CommandSearch = []string{
		"look for", "search", "find",
		"ابحث عن", "ابحث", "جد",
	}
	CommandShow = []string{
		"show tasks", "show my tasks", "list tasks", "my tasks",
		"اعرض المهام", "أظهر المهام", "مهامي",
	}
	CommandComplete = []string{
		"complete", "done", "finished",
		"أكملت", "انتهيت", "تم إنجاز",
	}
	CommandDelete = []string{
		"delete", "remove", "احذف", "امسح",
	}
)

// TaskWords are stripped from add-task payloads together with the triggers.
var TaskWords = []string{"task", "مهمة"}

// SearchConnectors are stripped from search payloads together with the
// triggers ("search about X" → "X").
var SearchConnectors = []string{"about", "عن"}
