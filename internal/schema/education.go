package schema

import "github.com/indiaviz/dataserver/internal/core"

func init() {
	core.Register(core.DatasetDefinition{
		Name: "education",
		File: "education.csv",
		Specs: []core.ColumnSpec{
			// Overall metrics
			{Name: "National Literacy Rate (%)", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(78.7)},
			{Name: "Primary Enrollment Rate (%)", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(94.2)},
			{Name: "Higher Education Enrollment (millions)", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(38.5)},

			// Per-state composite lists, row-aligned by position
			{Name: "State Names", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("Kerala, Delhi, Tamil Nadu, Himachal Pradesh, Maharashtra")},
			{Name: "State Literacy Rates (%)", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("96.2, 93.2, 90.4, 89.5, 88.9")},
			{Name: "State Primary Enrollment (%)", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("98.5, 97.2, 97.0, 96.3, 96.0")},
			{Name: "State Secondary Enrollment (%)", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("90.9, 88.7, 85.9, 91.5, 87.2")},
			{Name: "State Higher Ed Enrollment (%)", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("36.9, 36.0, 49.0, 30.8, 32.2")},

			// Historical series
			{Name: "Literacy Rate Years", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("1951, 1961, 1971, 1981, 1991, 2001, 2011, 2021")},
			{Name: "Literacy Rate History", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("18.3, 28.3, 34.5, 43.6, 52.2, 64.8, 74.0, 78.7")},

			// Infrastructure counts; digit grouping survives as text until
			// numeric coercion strips it
			{Name: "Number of Primary Schools", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.TextValue("848,712")},
			{Name: "Number of Secondary Schools", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.TextValue("271,385")},
			{Name: "Number of Colleges", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.TextValue("42,343")},
			{Name: "Number of Universities", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.TextValue("1,047")},
			{Name: "Number of Technical Institutions", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.TextValue("10,827")},

			// Regional breakdowns
			{Name: "Regional Names", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("North, South, East, West, Central, Northeast")},
			{Name: "Regional Primary Schools", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("196,000, 187,000, 142,000, 164,000, 91,000, 68,712")},
			{Name: "Regional Secondary Schools", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("62,500, 71,350, 47,000, 53,535, 23,000, 14,000")},
			{Name: "Regional Colleges", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("10,650, 13,960, 5,500, 8,233, 2,500, 1,500")},
			{Name: "Regional Population (millions)", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("365, 252, 230, 213, 115, 46")},

			// Teacher-student ratios ("1:N" format)
			{Name: "Teacher-Student Ratio Primary", Type: core.FieldText, Rule: core.RuleConstant, Constant: core.TextValue("1:26")},
			{Name: "Teacher-Student Ratio Secondary", Type: core.FieldText, Rule: core.RuleConstant, Constant: core.TextValue("1:22")},
			{Name: "Teacher-Student Ratio Higher Ed", Type: core.FieldText, Rule: core.RuleConstant, Constant: core.TextValue("1:24")},

			// Quality metrics
			{Name: "PISA Reading Score", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.TextValue("415")},
			{Name: "PISA Math Score", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.TextValue("428")},
			{Name: "PISA Science Score", Type: core.FieldInt, Rule: core.RuleConstant, Constant: core.TextValue("419")},
			{Name: "Global Innovation Index", Type: core.FieldText, Rule: core.RuleConstant, Constant: core.TextValue("37.2/100")},
			{Name: "Higher Education Quality Rank", Type: core.FieldText, Rule: core.RuleConstant, Constant: core.TextValue("16/50")},

			// PISA country comparisons
			{Name: "PISA Comparison Countries", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("India, China, UK, USA, Brazil")},
			{Name: "PISA Comparison Reading", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("415, 555, 504, 505, 413")},
			{Name: "PISA Comparison Math", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("428, 591, 502, 478, 384")},
			{Name: "PISA Comparison Science", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("419, 590, 505, 502, 404")},

			// University rankings
			{Name: "Top Universities", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("IIT Bombay, IISc Bangalore, IIT Delhi, IIT Madras, IIT Kanpur")},
			{Name: "University World Ranks", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("177, 185, 193, 255, 264")},

			// Gender parity
			{Name: "Gender Parity Primary", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(1.03)},
			{Name: "Gender Parity Secondary", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(1.01)},
			{Name: "Gender Parity Higher Ed", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(1.05)},
			{Name: "State Female Literacy (%)", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("92.0, 89.6, 86.4, 83.7, 83.1")},
			{Name: "State Male Literacy (%)", Type: core.FieldText, Rule: core.RuleConstant,
				Constant: core.TextValue("97.4, 95.7, 93.1, 93.6, 92.9")},

			// Legacy columns consumed by the older per-state chapter layout
			{Name: "State", Type: core.FieldText, Rule: core.RuleSequential, SeqLabel: "State"},
			{Name: "Literacy_Rate", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
			{Name: "Primary_Enrollment", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
			{Name: "Higher_Education_GER", Type: core.FieldFloat, Rule: core.RuleConstant, Constant: core.FloatValue(0)},
		},
	})
}
