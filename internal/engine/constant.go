package engine

// Spoken confirmation per command type, sent back through the speech/chat
// transport after a command is dispatched.
var confirmationPhrases = map[CommandType]string{
	CommandTypeAddTask:      "تمت إضافة المهمة",
	CommandTypeSearch:       "جاري البحث في مهامك",
	CommandTypeShowTasks:    "هذه قائمة مهامك",
	CommandTypeCompleteTask: "أحسنت! تم إنجاز المهمة",
	CommandTypeDeleteTask:   "تم حذف المهمة",
	CommandTypeUnknown:      "لم أفهم الطلب، حاول مرة أخرى",
}

// ConfirmationPhrase returns the spoken confirmation for a command type.
// Unrecognized types get the Unknown fallback.
func ConfirmationPhrase(t CommandType) string {
	if phrase, ok := confirmationPhrases[t]; ok {
		return phrase
	}
	return confirmationPhrases[CommandTypeUnknown]
}
