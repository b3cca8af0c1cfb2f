package tables

import (
	"regexp"

	"github.com/indiaviz/dataserver/internal/core"
)

// Per-festival fallback figures, keyed by festival name as it appears in
// the source sheet.

// DefaultEnvironmentalImpact is the fallback for festivals missing from
// EnvironmentalImpact.
const DefaultEnvironmentalImpact = "Moderate - General waste generation and energy usage common to mid-sized gatherings"

// EnvironmentalImpact maps festivals to a qualitative footprint summary.
var EnvironmentalImpact = map[string]string{
	"Diwali":                  "High - Air pollution from fireworks, increased waste from packaging, and energy consumption from lights",
	"Holi":                    "Moderate to High - Water usage and chemical colors can contaminate water bodies, though natural colors are increasingly used",
	"Durga Puja":              "Moderate - Idol immersion impacts water bodies, though eco-friendly materials are increasingly used",
	"Ganesh Chaturthi":        "Moderate to High - Water pollution from idol immersion, though eco-friendly clay idols are being promoted",
	"Navratri/Dussehra":       "Moderate - Burning of effigies causes air pollution, increased waste from decorations",
	"Onam":                    "Low - Primarily uses biodegradable materials like flowers and leaves for decorations",
	"Pongal/Makar Sankranti":  "Low to Moderate - Generally eco-friendly with some waste from kite materials in certain regions",
	"Bihu":                    "Low - Mostly uses natural and biodegradable materials",
	"Eid al-Fitr":             "Low to Moderate - Primarily food waste and packaging waste from new items",
	"Eid al-Adha":             "Moderate - Animal sacrifice creates biological waste, though usually well-managed",
	"Muharram":                "Low - Limited environmental impact from processions",
	"Christmas":               "Moderate - Tree cutting (though artificial trees are common), packaging waste from gifts",
	"Easter":                  "Low - Minimal environmental impact from celebrations",
	"Baisakhi":                "Low - Agricultural festival with minimal environmental footprint",
	"Guru Nanak Jayanti":      "Low - Minimal waste due to community meals using reusable plates",
	"Buddha Purnima":          "Low - Emphasis on non-violence extends to environmental consciousness",
	"Mahavir Jayanti":         "Low - Jain principles emphasize environmental protection",
	"Parsi New Year (Nowruz)": "Low - Small community with limited environmental impact",
	"Raksha Bandhan":          "Low to Moderate - Waste from packaging of gifts and rakhis",
	"Karva Chauth":            "Low - Minimal environmental impact",
	"Chhath Puja":             "Moderate - Water pollution from offerings and waste near riverbanks",
	"Gudi Padwa/Ugadi":        "Low - Uses mostly biodegradable traditional materials",
	"Puthandu/Vishu":          "Low - Primarily uses natural materials like flowers and fruits",
	"Teej":                    "Low - Minimal environmental impact from celebrations",
	"Hornbill Festival":       "Moderate - Increased waste and carbon footprint from tourism",
	"Hemis Festival":          "Low - Small scale with traditional materials",
	"Pushkar Camel Fair":      "Moderate - Large gathering creating waste and strain on local resources",
	"Thrissur Pooram":         "Moderate - Fireworks cause noise and air pollution",
	"Kumbh Mela":              "High - Massive gathering creating waste management challenges, water pollution, though improved management in recent years",
}

// DefaultEconomicImpact is the fallback economic impact in millions USD.
const DefaultEconomicImpact = 250

// EconomicImpact maps festivals to estimated economic impact in millions
// USD.
var EconomicImpact = map[string]int64{
	"Diwali":                  7200,
	"Holi":                    1500,
	"Durga Puja":              1200,
	"Ganesh Chaturthi":        950,
	"Navratri/Dussehra":       1700,
	"Onam":                    500,
	"Pongal/Makar Sankranti":  650,
	"Bihu":                    320,
	"Eid al-Fitr":             920,
	"Eid al-Adha":             750,
	"Muharram":                220,
	"Christmas":               780,
	"Easter":                  180,
	"Baisakhi":                350,
	"Guru Nanak Jayanti":      290,
	"Buddha Purnima":          150,
	"Mahavir Jayanti":         130,
	"Parsi New Year (Nowruz)": 80,
	"Raksha Bandhan":          620,
	"Karva Chauth":            410,
	"Chhath Puja":             280,
	"Gudi Padwa/Ugadi":        380,
	"Puthandu/Vishu":          270,
	"Teej":                    230,
	"Hornbill Festival":       170,
	"Hemis Festival":          90,
	"Pushkar Camel Fair":      310,
	"Thrissur Pooram":         250,
	"Kumbh Mela":              2200,
}

// DefaultParticipants is the fallback participant count in millions.
const DefaultParticipants = 30

// Participants maps festivals to estimated participants in millions.
var Participants = map[string]float64{
	"Diwali":                  800,
	"Holi":                    400,
	"Durga Puja":              120,
	"Ganesh Chaturthi":        100,
	"Navratri/Dussehra":       350,
	"Onam":                    35,
	"Pongal/Makar Sankranti":  200,
	"Bihu":                    25,
	"Eid al-Fitr":             180,
	"Eid al-Adha":             170,
	"Muharram":                80,
	"Christmas":               60,
	"Easter":                  30,
	"Baisakhi":                45,
	"Guru Nanak Jayanti":      40,
	"Buddha Purnima":          20,
	"Mahavir Jayanti":         15,
	"Parsi New Year (Nowruz)": 0.5,
	"Raksha Bandhan":          250,
	"Karva Chauth":            120,
	"Chhath Puja":             70,
	"Gudi Padwa/Ugadi":        80,
	"Puthandu/Vishu":          40,
	"Teej":                    60,
	"Hornbill Festival":       0.8,
	"Hemis Festival":          0.5,
	"Pushkar Camel Fair":      2,
	"Thrissur Pooram":         3,
	"Kumbh Mela":              220,
}

// DefaultTouristLevel is the fallback attraction level on the 1-10 scale.
const DefaultTouristLevel = 5

// TouristLevel maps festivals to their tourist attraction level (1-10).
var TouristLevel = map[string]int64{
	"Diwali":                  9,
	"Holi":                    10,
	"Durga Puja":              8,
	"Ganesh Chaturthi":        8,
	"Navratri/Dussehra":       7,
	"Onam":                    7,
	"Pongal/Makar Sankranti":  6,
	"Bihu":                    5,
	"Eid al-Fitr":             5,
	"Eid al-Adha":             4,
	"Muharram":                3,
	"Christmas":               6,
	"Easter":                  4,
	"Baisakhi":                6,
	"Guru Nanak Jayanti":      5,
	"Buddha Purnima":          6,
	"Mahavir Jayanti":         3,
	"Parsi New Year (Nowruz)": 2,
	"Raksha Bandhan":          4,
	"Karva Chauth":            3,
	"Chhath Puja":             4,
	"Gudi Padwa/Ugadi":        4,
	"Puthandu/Vishu":          4,
	"Teej":                    5,
	"Hornbill Festival":       9,
	"Hemis Festival":          8,
	"Pushkar Camel Fair":      10,
	"Thrissur Pooram":         9,
	"Kumbh Mela":              10,
}

// DefaultGlobalCelebrations is the fallback global-reach summary.
const DefaultGlobalCelebrations = "Celebrated in 3+ countries with Indian diaspora communities"

// GlobalCelebrations maps festivals to their international reach.
var GlobalCelebrations = map[string]string{
	"Diwali":                  "Celebrated in 30+ countries across North America, Europe, Asia, Africa, and Australia",
	"Holi":                    "Celebrated in 40+ countries, with growing popularity as \"color festivals\" globally",
	"Durga Puja":              "Celebrated in 15+ countries with significant Bengali diaspora communities",
	"Ganesh Chaturthi":        "Celebrated in 12+ countries with significant Maharashtrian communities",
	"Navratri/Dussehra":       "Celebrated in 20+ countries with significant Indian diaspora",
	"Onam":                    "Celebrated in 8+ countries with Malayali diaspora communities",
	"Pongal/Makar Sankranti":  "Celebrated in 10+ countries with Tamil and Indian diaspora",
	"Bihu":                    "Celebrated in 5+ countries with Assamese communities",
	"Eid al-Fitr":             "Celebrated in 25+ countries with Indian Muslim communities",
	"Eid al-Adha":             "Celebrated in 22+ countries with Indian Muslim communities",
	"Muharram":                "Observed in 15+ countries with Shia Muslim communities",
	"Christmas":               "Celebrated in 30+ countries with Indian Christian communities",
	"Easter":                  "Celebrated in 20+ countries with Indian Christian communities",
	"Baisakhi":                "Celebrated in 18+ countries with significant Sikh diaspora",
	"Guru Nanak Jayanti":      "Celebrated in 15+ countries with Sikh communities",
	"Buddha Purnima":          "Celebrated in 10+ countries with Buddhist connections",
	"Mahavir Jayanti":         "Celebrated in 7+ countries with Jain diaspora",
	"Parsi New Year (Nowruz)": "Celebrated in 5+ countries with Parsi communities",
	"Raksha Bandhan":          "Celebrated in 14+ countries with Indian diaspora",
	"Karva Chauth":            "Celebrated in 8+ countries with North Indian diaspora",
	"Chhath Puja":             "Celebrated in 6+ countries with Bihari diaspora",
	"Gudi Padwa/Ugadi":        "Celebrated in 7+ countries with South Indian diaspora",
	"Puthandu/Vishu":          "Celebrated in 6+ countries with Tamil and Malayalam diaspora",
	"Teej":                    "Celebrated in 5+ countries with North Indian communities",
	"Hornbill Festival":       "Recognized in 3+ countries through cultural exchanges",
	"Hemis Festival":          "Recognized in 4+ countries with Tibetan Buddhist communities",
	"Pushkar Camel Fair":      "Attracts tourists from 25+ countries annually",
	"Thrissur Pooram":         "Recognized in 5+ countries through cultural showcases",
	"Kumbh Mela":              "Attracts pilgrims and tourists from 20+ countries",
}

var firstWord = regexp.MustCompile(`[A-Za-z]+`)

// monthNames standardizes the extracted season word. The twelve month
// names map to themselves, as does "Variable" (movable lunar-calendar
// dates). Anything else is not a month.
var monthNames = map[string]string{
	"January":   "January",
	"February":  "February",
	"March":     "March",
	"April":     "April",
	"May":       "May",
	"June":      "June",
	"July":      "July",
	"August":    "August",
	"September": "September",
	"October":   "October",
	"November":  "November",
	"December":  "December",
	"Variable":  "Variable",
}

// FirstMonth extracts the opening month from a season description,
// collapsing ranges like "October-November" to "October". The extracted
// word is standardized against monthNames; words that are not months
// ("Spring", "Harvest") yield null, as do null seasons.
func FirstMonth(season core.Value) core.Value {
	if season.IsNull() {
		return core.NullValue(core.KindText)
	}
	w := firstWord.FindString(season.AsText())
	m, ok := monthNames[w]
	if !ok {
		return core.NullValue(core.KindText)
	}
	return core.TextValue(m)
}
