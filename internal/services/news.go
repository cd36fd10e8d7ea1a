package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"tharagrowth-api/internal/models"
)

// NewsService serves curated financial news per locale with a 2 hour
// cache. The articles are editorial seed content; a live news provider
// would replace newsFor while keeping the same contract.
type NewsService struct {
	articles *KeyedSource[[]models.NewsArticle]
}

func NewNewsService(ttl time.Duration, log zerolog.Logger) *NewsService {
	return &NewsService{
		articles: NewKeyedSource[[]models.NewsArticle](
			"financial_news",
			ttl,
			func(ctx context.Context, locale string) ([]models.NewsArticle, error) {
				return newsFor(locale), nil
			},
			newsFor,
			log,
		),
	}
}

// FinancialNews returns the latest articles for a locale, falling back
// to English for unknown locales.
func (s *NewsService) FinancialNews(ctx context.Context, locale string) []models.NewsArticle {
	return s.articles.Get(ctx, locale)
}

func newsFor(locale string) []models.NewsArticle {
	now := time.Now()

	articles, ok := newsByLocale[locale]
	if !ok {
		articles = newsByLocale["en"]
	}

	out := make([]models.NewsArticle, len(articles))
	copy(out, articles)
	for i := range out {
		out[i].Timestamp = now
	}
	return out
}

var newsByLocale = map[string][]models.NewsArticle{
	"en": {
		{
			Title:    "Global Markets Show Strong Recovery",
			Summary:  "Major indices gained ground as investors showed renewed confidence...",
			Source:   "Financial Times",
			Category: "markets",
		},
		{
			Title:    "Gold Prices Reach New Monthly High",
			Summary:  "Precious metals continue their upward trend amid economic uncertainty...",
			Source:   "Bloomberg",
			Category: "commodities",
		},
		{
			Title:    "Real Estate Investment Opportunities in GCC",
			Summary:  "Gulf Cooperation Council countries present attractive real estate prospects...",
			Source:   "Gulf Business",
			Category: "real_estate",
		},
	},
	"ar": {
		{
			Title:    "الأسواق العالمية تشهد تعافياً قوياً",
			Summary:  "حققت المؤشرات الرئيسية مكاسب كبيرة وسط تجدد ثقة المستثمرين...",
			Source:   "الاقتصادية",
			Category: "markets",
		},
		{
			Title:    "أسعار الذهب تصل لأعلى مستوى شهري",
			Summary:  "تواصل المعادن النفيسة اتجاهها الصاعد وسط عدم اليقين الاقتصادي...",
			Source:   "العربية",
			Category: "commodities",
		},
		{
			Title:    "فرص استثمارية في العقارات بدول الخليج",
			Summary:  "تقدم دول مجلس التعاون الخليجي فرصاً جذابة في القطاع العقاري...",
			Source:   "الخليج التجاري",
			Category: "real_estate",
		},
	},
	"fr": {
		{
			Title:    "Les Marchés Mondiaux Montrent une Forte Reprise",
			Summary:  "Les principaux indices ont gagné du terrain alors que les investisseurs retrouvent confiance...",
			Source:   "Les Échos",
			Category: "markets",
		},
		{
			Title:    "Les Prix de l'Or Atteignent un Nouveau Sommet Mensuel",
			Summary:  "Les métaux précieux continuent leur tendance haussière dans un contexte d'incertitude...",
			Source:   "La Tribune",
			Category: "commodities",
		},
		{
			Title:    "Opportunités d'Investissement Immobilier dans le CCG",
			Summary:  "Les pays du Conseil de Coopération du Golfe présentent des perspectives immobilières attrayantes...",
			Source:   "Gulf Business FR",
			Category: "real_estate",
		},
	},
}
