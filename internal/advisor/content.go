package advisor

// Localized strategy narrative. English is the mandatory fallback locale.

var rationales = map[string]map[string]string{
	"en": {
		"conservative": "This conservative approach prioritizes capital preservation and steady income generation. Bonds and Sukuk provide stable returns with lower risk, while real estate and gold offer inflation protection.",
		"balanced":     "This balanced strategy combines growth potential with risk management. Stocks drive long-term growth while real estate and bonds provide stability and regular income.",
		"aggressive":   "This growth-focused strategy maximizes long-term wealth building potential. Higher stock allocation and alternative investments like crowdfunding offer substantial growth opportunities.",
	},
	"ar": {
		"conservative": "يركز هذا النهج المحافظ على الحفاظ على رأس المال وتوليد دخل ثابت. توفر السندات والصكوك عوائد مستقرة مع مخاطر أقل، بينما توفر العقارات والذهب حماية من التضخم.",
		"balanced":     "تجمع هذه الاستراتيجية المتوازنة بين إمكانية النمو وإدارة المخاطر. تحرك الأسهم النمو طويل المدى بينما توفر العقارات والسندات الاستقرار والدخل المنتظم.",
		"aggressive":   "تركز هذه الاستراتيجية على النمو لتعظيم إمكانات بناء الثروة طويل المدى. التخصيص الأعلى للأسهم والاستثمارات البديلة مثل التمويل الجماعي توفر فرص نمو كبيرة.",
	},
	"fr": {
		"conservative": "Cette approche conservatrice privilégie la préservation du capital et la génération de revenus stables. Les obligations et Sukuk offrent des rendements stables avec moins de risques, tandis que l'immobilier et l'or protègent contre l'inflation.",
		"balanced":     "Cette stratégie équilibrée combine potentiel de croissance et gestion des risques. Les actions favorisent la croissance à long terme tandis que l'immobilier et les obligations apportent stabilité et revenus réguliers.",
		"aggressive":   "Cette stratégie axée sur la croissance maximise le potentiel de création de richesse à long terme. L'allocation plus élevée en actions et les investissements alternatifs comme le financement participatif offrent d'importantes opportunités de croissance.",
	},
}

var tips = map[string]map[string]string{
	"en": {
		"conservative": "Focus on income-generating assets and maintain emergency liquidity",
		"balanced":     "Regularly rebalance your portfolio and diversify across asset classes",
		"aggressive":   "Monitor market trends closely and be prepared for volatility",
	},
	"ar": {
		"conservative": "ركز على الأصول المدرة للدخل واحتفظ بسيولة طوارئ",
		"balanced":     "أعد توازن محفظتك بانتظام ونوع عبر فئات الأصول",
		"aggressive":   "راقب اتجاهات السوق عن كثب وكن مستعداً للتقلبات",
	},
	"fr": {
		"conservative": "Concentrez-vous sur les actifs générateurs de revenus et maintenez une liquidité d'urgence",
		"balanced":     "Rééquilibrez régulièrement votre portefeuille et diversifiez entre les classes d'actifs",
		"aggressive":   "Surveillez attentivement les tendances du marché et préparez-vous à la volatilité",
	},
}

// Rationale returns the strategy rationale text for a locale.
func Rationale(strategy, locale string) string {
	return lookupContent(rationales, strategy, locale)
}

// Tips returns the personalized tip for a strategy and locale.
func Tips(strategy, locale string) string {
	return lookupContent(tips, strategy, locale)
}

func lookupContent(table map[string]map[string]string, strategy, locale string) string {
	byStrategy, ok := table[locale]
	if !ok {
		byStrategy = table["en"]
	}
	return byStrategy[strategy]
}
