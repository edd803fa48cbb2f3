// Package i18n holds the static translation table for the dashboard UI.
package i18n

// DefaultLanguage is the fallback for unknown or missing language tags.
const DefaultLanguage = "en"

// Bundle is the set of UI strings for one language.
type Bundle struct {
	Title            string
	HeaderTitle      string
	HeaderSubtitle   string
	InputPlaceholder string
	DesignButton     string
	HistoryTitle     string
	NewDesign        string
}

var bundles = map[string]Bundle{
	"en": {
		Title:            "PsyDesign AI - Brand Psychology Designer",
		HeaderTitle:      "PsyDesign AI",
		HeaderSubtitle:   "Your brand's soul, designed by intelligence.",
		InputPlaceholder: "e.g., 'A sustainable coffee brand for urban youth.'",
		DesignButton:     "Design My Brand",
		HistoryTitle:     "Design History",
		NewDesign:        "New Design",
	},
	"es": {
		Title:            "PsyDesign AI - Diseñador de Psicología de Marca",
		HeaderTitle:      "PsyDesign AI",
		HeaderSubtitle:   "El alma de tu marca, diseñada por inteligencia.",
		InputPlaceholder: "Ej: 'Una marca de café sostenible para jóvenes urbanos.'",
		DesignButton:     "Diseñar Mi Marca",
		HistoryTitle:     "Historial de Diseños",
		NewDesign:        "Nuevo Diseño",
	},
	"fr": {
		Title:            "PsyDesign AI - Concepteur en Psychologie de Marque",
		HeaderTitle:      "PsyDesign AI",
		HeaderSubtitle:   "L'âme de votre marque, conçue par l'intelligence.",
		InputPlaceholder: "Ex: 'Une marque de café durable pour les jeunes urbains.'",
		DesignButton:     "Concevoir Ma Marque",
		HistoryTitle:     "Historique des Conceptions",
		NewDesign:        "Nouveau Design",
	},
	"hi": {
		Title:            "साइ-डिज़ाइन AI - ब्रांड मनोविज्ञान डिज़ाइनर",
		HeaderTitle:      "साइ-डिज़ाइन AI",
		HeaderSubtitle:   "आपकी ब्रांड की आत्मा, बुद्धिमत्ता द्वारा डिज़ाइन की गई।",
		InputPlaceholder: "उदा: 'शहरी युवाओं के लिए एक सस्टेनेबल कॉफ़ी ब्रांड।'",
		DesignButton:     "मेरा ब्रांड डिज़ाइन करें",
		HistoryTitle:     "डिज़ाइन इतिहास",
		NewDesign:        "नया डिज़ाइन",
	},
	"zh": {
		Title:            "PsyDesign AI - 品牌心理学设计师",
		HeaderTitle:      "PsyDesign AI",
		HeaderSubtitle:   "智能设计的品牌灵魂。",
		InputPlaceholder: "例如：'一个为城市青年打造的可持续咖啡品牌。'",
		DesignButton:     "设计我的品牌",
		HistoryTitle:     "设计历史",
		NewDesign:        "新设计",
	},
	"ar": {
		Title:            "PsyDesign AI - مصمم سيكولوجية العلامة التجارية",
		HeaderTitle:      "PsyDesign AI",
		HeaderSubtitle:   "روح علامتك التجارية، مصممة بالذكاء.",
		InputPlaceholder: "مثال: 'علامة تجارية مستدامة للقهوة لشباب المدن.'",
		DesignButton:     "صمم علامتي التجارية",
		HistoryTitle:     "سجل التصميمات",
		NewDesign:        "تصميم جديد",
	},
}

// ForLanguage returns the bundle for lang together with the tag actually
// used; unknown tags fall back to DefaultLanguage.
func ForLanguage(lang string) (string, Bundle) {
	if b, ok := bundles[lang]; ok {
		return lang, b
	}
	return DefaultLanguage, bundles[DefaultLanguage]
}
