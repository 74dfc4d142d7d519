package domain

var fieldLabels = map[string]string{
	"CGPA":               "CGPA",
	"academic_pressure":  "Academic Pressure",
	"age":                "Age",
	"city":               "City",
	"degree":             "Degree",
	"diet":               "Dietary Habits",
	"family":             "Family History of Mental Illness",
	"financial_stress":   "Financial Stress",
	"gender":             "Gender",
	"job_satisfaction":   "Job Satisfaction",
	"profession":         "Profession",
	"sleep_duration":     "Sleep Duration",
	"study_satisfaction": "Study Satisfaction",
	"suicidal":           "Have you ever had suicidal thoughts ?",
	"wps":                "Working Professional or Student",
	"wsh":                "Work/Study Hours",
	"work_pressure":      "Work Pressure",
}

var (
	yesNo  = []string{"Yes", "No"}
	scale5 = []string{"1", "2", "3", "4", "5"}
)

// ScreeningForm is the nine-page questionnaire the screening server expects.
// Pressure and satisfaction fields are optional because only one of the
// student or professional variants applies to a given respondent.
func ScreeningForm() Form {
	labels := make(map[string]string, len(fieldLabels))
	for key, label := range fieldLabels {
		labels[key] = label
	}

	return Form{
		Labels: labels,
		Pages: []Page{
			{Title: "About you", Fields: []Field{
				{Key: "gender", Kind: FieldKindSelect, Options: []string{"Male", "Female"}, Required: true},
				{Key: "age", Kind: FieldKindNumber, Required: true},
			}},
			{Title: "Where you are", Fields: []Field{
				{Key: "city", Kind: FieldKindText, Required: true},
				{Key: "wps", Kind: FieldKindSelect, Options: []string{"Working Professional", "Student"}, Required: true},
			}},
			{Title: "Work and study", Fields: []Field{
				{Key: "profession", Kind: FieldKindText},
				{Key: "degree", Kind: FieldKindText, Required: true},
			}},
			{Title: "Pressure", Fields: []Field{
				{Key: "academic_pressure", Kind: FieldKindSelect, Options: scale5},
				{Key: "work_pressure", Kind: FieldKindSelect, Options: scale5},
			}},
			{Title: "Studies", Fields: []Field{
				{Key: "CGPA", Kind: FieldKindNumber},
				{Key: "study_satisfaction", Kind: FieldKindSelect, Options: scale5},
			}},
			{Title: "Job and sleep", Fields: []Field{
				{Key: "job_satisfaction", Kind: FieldKindSelect, Options: scale5},
				{Key: "sleep_duration", Kind: FieldKindSelect, Options: []string{
					"Less than 5 hours", "5-6 hours", "7-8 hours", "More than 8 hours",
				}, Required: true},
			}},
			{Title: "Habits", Fields: []Field{
				{Key: "diet", Kind: FieldKindSelect, Options: []string{"Healthy", "Moderate", "Unhealthy"}, Required: true},
				{Key: "suicidal", Kind: FieldKindSelect, Options: yesNo, Required: true},
			}},
			{Title: "Load", Fields: []Field{
				{Key: "wsh", Kind: FieldKindNumber, Required: true},
				{Key: "financial_stress", Kind: FieldKindSelect, Options: scale5, Required: true},
			}},
			{Title: "Family", Fields: []Field{
				{Key: "family", Kind: FieldKindSelect, Options: yesNo, Required: true},
			}},
		},
	}
}
