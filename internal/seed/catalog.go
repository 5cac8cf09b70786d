package seed

// Persons in conjugation table order.
var spanishPersons = []string{"yo", "tú", "él/ella", "nosotros", "vosotros", "ellos/ellas"}

// verbEntry is one verb of the demo catalog with its conjugations per tense
// in person order.
type verbEntry struct {
	Infinitive string
	VerbType   string
	Complexity float64
	Forms      map[string][]string
}

// topic is a practice session topic.
type topic struct {
	Slug     string
	Title    string
	Category string
}

var spanishTenses = []string{"present", "preterite", "future"}

var spanishVerbs = []verbEntry{
	{"hablar", "regular", 1.0, map[string][]string{
		"present":   {"hablo", "hablas", "habla", "hablamos", "habláis", "hablan"},
		"preterite": {"hablé", "hablaste", "habló", "hablamos", "hablasteis", "hablaron"},
		"future":    {"hablaré", "hablarás", "hablará", "hablaremos", "hablaréis", "hablarán"},
	}},
	{"comer", "regular", 1.2, map[string][]string{
		"present":   {"como", "comes", "come", "comemos", "coméis", "comen"},
		"preterite": {"comí", "comiste", "comió", "comimos", "comisteis", "comieron"},
		"future":    {"comeré", "comerás", "comerá", "comeremos", "comeréis", "comerán"},
	}},
	{"vivir", "regular", 1.2, map[string][]string{
		"present":   {"vivo", "vives", "vive", "vivimos", "vivís", "viven"},
		"preterite": {"viví", "viviste", "vivió", "vivimos", "vivisteis", "vivieron"},
		"future":    {"viviré", "vivirás", "vivirá", "viviremos", "viviréis", "vivirán"},
	}},
	{"tener", "irregular", 2.6, map[string][]string{
		"present":   {"tengo", "tienes", "tiene", "tenemos", "tenéis", "tienen"},
		"preterite": {"tuve", "tuviste", "tuvo", "tuvimos", "tuvisteis", "tuvieron"},
		"future":    {"tendré", "tendrás", "tendrá", "tendremos", "tendréis", "tendrán"},
	}},
	{"ser", "irregular", 2.8, map[string][]string{
		"present":   {"soy", "eres", "es", "somos", "sois", "son"},
		"preterite": {"fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"},
		"future":    {"seré", "serás", "será", "seremos", "seréis", "serán"},
	}},
	{"hacer", "irregular", 2.5, map[string][]string{
		"present":   {"hago", "haces", "hace", "hacemos", "hacéis", "hacen"},
		"preterite": {"hice", "hiciste", "hizo", "hicimos", "hicisteis", "hicieron"},
		"future":    {"haré", "harás", "hará", "haremos", "haréis", "harán"},
	}},
	{"poder", "stem_changing", 2.2, map[string][]string{
		"present":   {"puedo", "puedes", "puede", "podemos", "podéis", "pueden"},
		"preterite": {"pude", "pudiste", "pudo", "pudimos", "pudisteis", "pudieron"},
		"future":    {"podré", "podrás", "podrá", "podremos", "podréis", "podrán"},
	}},
	{"dormir", "stem_changing", 2.0, map[string][]string{
		"present":   {"duermo", "duermes", "duerme", "dormimos", "dormís", "duermen"},
		"preterite": {"dormí", "dormiste", "durmió", "dormimos", "dormisteis", "durmieron"},
		"future":    {"dormiré", "dormirás", "dormirá", "dormiremos", "dormiréis", "dormirán"},
	}},
	{"pedir", "stem_changing", 2.1, map[string][]string{
		"present":   {"pido", "pides", "pide", "pedimos", "pedís", "piden"},
		"preterite": {"pedí", "pediste", "pidió", "pedimos", "pedisteis", "pidieron"},
		"future":    {"pediré", "pedirás", "pedirá", "pediremos", "pediréis", "pedirán"},
	}},
}

// Typical wrong answers: regularized irregular forms and unchanged stems.
var spanishSlips = map[string]map[string][]string{
	"tener":  {"present": {"teno", "tenes", "tene", "tenemos", "tenéis", "tenen"}, "preterite": {"tení", "teniste", "tenió", "tenimos", "tenisteis", "tenieron"}},
	"hacer":  {"preterite": {"hací", "haciste", "hació", "hacimos", "hacisteis", "hacieron"}},
	"poder":  {"present": {"podo", "podes", "pode", "podemos", "podéis", "poden"}, "future": {"poderé", "poderás", "poderá", "poderemos", "poderéis", "poderán"}},
	"dormir": {"present": {"dormo", "dormes", "dorme", "dormimos", "dormís", "dormen"}},
	"ser":    {"preterite": {"sí", "siste", "sió", "simos", "sisteis", "sieron"}},
}

// Base probability of a correct answer per tense, adjusted per verb type.
var (
	tenseSkill    = map[string]float64{"present": 0.88, "preterite": 0.55, "future": 0.74}
	verbTypeSkill = map[string]float64{"regular": 0.06, "irregular": -0.12, "stem_changing": -0.05}
)

func spanishTopics() map[string]topic {
	return map[string]topic{
		"present":   {Slug: "present-tense", Title: "Present tense", Category: "present"},
		"preterite": {Slug: "preterite-tense", Title: "Preterite tense", Category: "past"},
		"future":    {Slug: "future-tense", Title: "Simple future", Category: "future"},
	}
}
