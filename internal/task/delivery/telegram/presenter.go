package telegram

import (
	"fmt"
	"strings"

	"smart-task-assistant/internal/engine"
	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/task"
	"smart-task-assistant/pkg/response"
)

// User-facing chat messages.
const (
	msgWelcome = "👋 أهلاً بك في *المساعد الذكي للمهام*!\n\n" +
		"أرسل لي مهمة بلغتك الطبيعية وسأتولى الباقي:\n" +
		"• 📝 تحديد الأولوية والتصنيف تلقائياً\n" +
		"• 📅 استخراج الموعد وإضافته إلى التقويم\n\n" +
		"_مثال: \"أضف مهمة اجتماع عاجل مع العميل غداً\"_"

	msgHelp = "*طريقة الاستخدام:*\n\n" +
		"اكتب الأمر مباشرة، أمثلة:\n" +
		"`أضف مهمة شراء الحليب`\n" +
		"`ابحث عن تقرير`\n" +
		"`اعرض المهام`\n" +
		"`أكملت شراء الحليب`\n" +
		"`احذف شراء الحليب`"

	msgProcessingError = "حدث خطأ أثناء معالجة طلبك. حاول مرة أخرى."
	msgNoMatchingTask  = "⚠️ لم أجد مهمة مطابقة لطلبك."
	msgNoTasks         = "لا توجد مهام حالياً."
)

// formatDispatchReply renders a dispatched command result as a chat message.
// The first line is always the engine's confirmation phrase.
func formatDispatchReply(out task.DispatchOutput) string {
	var b strings.Builder
	b.WriteString(out.Reply)

	switch out.CommandType {
	case engine.CommandTypeAddTask, engine.CommandTypeCompleteTask, engine.CommandTypeDeleteTask:
		if out.Task != nil {
			b.WriteString("\n\n")
			b.WriteString(formatTaskLine(1, *out.Task))
		}
	case engine.CommandTypeSearch, engine.CommandTypeShowTasks:
		b.WriteString("\n\n")
		if len(out.Tasks) == 0 {
			b.WriteString(msgNoTasks)
			break
		}
		for i, t := range out.Tasks {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(formatTaskLine(i+1, t))
		}
	}

	return b.String()
}

func formatTaskLine(n int, t model.Task) string {
	line := fmt.Sprintf("%d. *%s* (%s/%s)", n, t.Title, t.Priority, t.Category)
	if t.DueDate != nil {
		line += fmt.Sprintf("\n   📅 %s", t.DueDate.Format(response.DateTimeFormat))
	}
	if t.CalendarLink != "" {
		line += fmt.Sprintf("\n   🔗 [التقويم](%s)", t.CalendarLink)
	}
	if t.Done {
		line += " ✅"
	}
	return line
}
