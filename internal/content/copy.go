package content

// Hero copy.
var Hero = struct {
	Title       string
	TitleAccent string
	Lead        string
	PrimaryCTA  string
	ContactCTA  string
}{
	Title:       "Будущее начинается с",
	TitleAccent: "искусственного интеллекта",
	Lead:        "Революционная технология глубокого обучения для решения сложнейших задач",
	PrimaryCTA:  "Узнать больше",
	ContactCTA:  "Связаться с нами",
}

// Demo is the copy of the analysis card.
var Demo = struct {
	Heading     string
	Subheading  string
	CardTitle   string
	CardHint    string
	Placeholder string
	Submit      string
	Processing  string
	Done        string
	Words       string
	Sentiment   string
	Complexity  string
	KeyTerms    string
	Elapsed     string
	Failed      string
}{
	Heading:     "Интерактивная демонстрация",
	Subheading:  "Попробуйте нашу AI-технологию в действии",
	CardTitle:   "Анализ текста в реальном времени",
	CardHint:    "Введите любой текст для анализа с помощью нейросети",
	Placeholder: "Введите текст для анализа...",
	Submit:      "Запустить анализ",
	Processing:  "Обработка...",
	Done:        "Анализ текста завершён:",
	Words:       "Обнаружено слов",
	Sentiment:   "Тональность",
	Complexity:  "Уровень сложности",
	KeyTerms:    "Ключевые термины",
	Elapsed:     "Нейросеть обработала запрос за",
	Failed:      "Не удалось выполнить анализ",
}

// SentimentLabel and ComplexityLabel translate result values for display.
var (
	SentimentLabel = map[string]string{
		"Positive": "Позитивная",
		"Neutral":  "Нейтральная",
	}
	ComplexityLabel = map[string]string{
		"High":   "Высокий",
		"Medium": "Средний",
	}

	// FailureReason is keyed by analysis error kind.
	FailureReason = map[string]string{
		"validation": "сервис анализа отклонил текст",
		"transient":  "сервис анализа временно недоступен",
		"fatal":      "ошибка сервиса анализа",
	}
)

type Capability struct {
	Icon        string
	Title       string
	Description string
}

const CapabilitiesHeading = "Возможности технологии"

var Capabilities = []Capability{
	{"lucide--zap", "Высокая скорость", "Обработка данных в 100 раз быстрее традиционных методов"},
	{"lucide--target", "Точность 99.7%", "Превосходная точность распознавания и классификации"},
	{"lucide--layers", "Масштабируемость", "От малых задач до промышленных решений"},
	{"lucide--shield", "Безопасность", "Защита данных на уровне банковских систем"},
	{"lucide--trending-up", "Самообучение", "Постоянное улучшение на основе новых данных"},
	{"lucide--globe", "Мультиязычность", "Поддержка более 100 языков мира"},
}

type Case struct {
	Company     string
	Metric      string
	Description string
}

const CasesHeading = "Успешные кейсы"

var Cases = []Case{
	{"HealthTech Corp", "+340%", "Увеличение скорости диагностики заболеваний"},
	{"FinanceAI", "99.9%", "Точность предсказания финансовых трендов"},
	{"AutoDrive Systems", "50M км", "Безопасно пройдено автономными системами"},
	{"RetailBot", "-62%", "Снижение операционных расходов"},
}

const ResearchHeading = "Научные исследования"

// AccuracyPoint is one bar of the accuracy chart; Accuracy is a percentage.
type AccuracyPoint struct {
	Year     string
	Accuracy float64
	Color    string
}

var Accuracy = []AccuracyPoint{
	{"2022", 87, "bg-base-300"},
	{"2023", 94, "bg-secondary"},
	{"2024", 99.7, "bg-primary"},
}

// VolumePoint is one column of the data volume chart. Height is relative
// to the tallest column, in percent.
type VolumePoint struct {
	Year      string
	Petabytes int
	Height    int
}

var Volume = []VolumePoint{
	{"2022", 45, 45},
	{"2023", 120, 75},
	{"2024", 280, 100},
}

type TaskScore struct {
	Task        string
	AI          int
	Traditional int
}

var TaskScores = []TaskScore{
	{"Распознавание изображений", 98, 76},
	{"Обработка естественного языка", 95, 68},
	{"Прогнозирование временных рядов", 91, 72},
	{"Классификация данных", 97, 81},
}

type Stat struct {
	Label string
	Value string
	Icon  string
	Trend string
}

var Stats = []Stat{
	{"Публикаций", "147", "lucide--file-text", "+23%"},
	{"Цитирований", "4.2K", "lucide--quote", "+156%"},
	{"Патентов", "38", "lucide--award", "+12"},
}

type Publication struct {
	Title     string
	Journal   string
	Year      string
	Citations string
	Impact    float64
}

var Publications = []Publication{
	{"Архитектура глубоких нейронных сетей", "Nature Machine Intelligence", "2024", "1,247", 9.3},
	{"Методы оптимизации обучения на больших данных", "Science Advances", "2024", "892", 8.7},
	{"Интерпретируемость решений нейросетей", "IEEE Transactions on AI", "2023", "2,134", 9.8},
}

// ContactField is one input of the contact form. The form is never submitted.
type ContactField struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Multiline   bool
}

var Contact = struct {
	Heading    string
	Subheading string
	Fields     []ContactField
	Submit     string
}{
	Heading:    "Свяжитесь с нами",
	Subheading: "Готовы внедрить AI в ваш бизнес?",
	Fields: []ContactField{
		{Name: "name", Label: "Имя", Type: "text", Placeholder: "Ваше имя"},
		{Name: "email", Label: "Email", Type: "email", Placeholder: "your@email.com"},
		{Name: "company", Label: "Компания", Type: "text", Placeholder: "Название компании"},
		{Name: "message", Label: "Сообщение", Placeholder: "Расскажите о вашем проекте...", Multiline: true},
	},
	Submit: "Отправить заявку",
}

const Copyright = "© 2024 NeuroTech AI. Все права защищены."
