package usecase

// Candidate task titles per hour bucket. Two per bucket so a weekday
// addendum still fits under the 3-item cap.
var (
	morningTitles = []string{
		"مراجعة خطة اليوم",
		"الرد على الرسائل المهمة",
	}
	afternoonTitles = []string{
		"متابعة المهام الجارية",
		"اجتماع سريع مع الفريق",
	}
	eveningTitles = []string{
		"التخطيط ليوم غد",
		"قراءة لمدة نصف ساعة",
	}
)

// Weekday addenda, appended after the bucket titles.
const (
	mondayTitle = "تحديد أهداف الأسبوع"
	fridayTitle = "مراجعة إنجازات الأسبوع"
)

// Productivity advice tiers, selected by score thresholds. Each tier is
// exactly 3 strings; the empty-input case gets a single starter suggestion.
var (
	adviceExcellent = []string{
		"أداء ممتاز! حافظ على هذا المستوى",
		"خذ استراحة قصيرة تستحقها",
		"شارك طريقتك في التنظيم مع فريقك",
	}
	adviceGood = []string{
		"أداء جيد، أنت قريب من القمة",
		"أنجز المهام الصغيرة أولا لتفريغ قائمتك",
		"قلل المشتتات أثناء فترات التركيز",
	}
	adviceFair = []string{
		"قسم المهام الكبيرة إلى خطوات أصغر",
		"ابدأ بأصعب مهمة في بداية يومك",
		"حدد وقتا ثابتا للمراجعة اليومية",
	}
	adviceLow = []string{
		"ابدأ بمهمة واحدة صغيرة الآن",
		"رتب مهامك حسب الأولوية",
		"فعل التذكيرات لمواعيد الاستحقاق",
	}
	adviceGetStarted = []string{
		"ابدأ بإضافة مهمتك الأولى اليوم",
	}
)

// Score thresholds for the advice tiers.
const (
	scoreExcellent = 80
	scoreGood      = 60
	scoreFair      = 40
)
