package catalog

var seedMedicines = []Medicine{
	{ID: "med-1", Name: "Amoxicillin 250mg", Group: "Antibiotic", Company: "GlaxoSmithKline", Description: "Penicillin antibiotic used to treat bacterial infections"},
	{ID: "med-2", Name: "Amoxicillin 500mg", Group: "Antibiotic", Company: "GlaxoSmithKline", Description: "Penicillin antibiotic used to treat bacterial infections"},
	{ID: "med-3", Name: "Aspirin 81mg", Group: "Antiplatelet", Company: "Bayer", Description: "Used to reduce pain, fever, and the risk of blood clots"},
	{ID: "med-4", Name: "Aspirin 325mg", Group: "Antiplatelet", Company: "Bayer", Description: "Used to reduce pain, fever, and the risk of blood clots"},
	{ID: "med-5", Name: "Atorvastatin 10mg", Group: "Statin", Company: "Pfizer", Description: "Used to lower blood cholesterol levels"},
	{ID: "med-6", Name: "Atorvastatin 20mg", Group: "Statin", Company: "Pfizer", Description: "Used to lower blood cholesterol levels"},
	{ID: "med-7", Name: "Atorvastatin 40mg", Group: "Statin", Company: "Pfizer", Description: "Used to lower blood cholesterol levels"},
	{ID: "med-8", Name: "Atorvastatin 80mg", Group: "Statin", Company: "Pfizer", Description: "Used to lower blood cholesterol levels"},
	{ID: "med-9", Name: "Lisinopril 5mg", Group: "ACE Inhibitor", Company: "AstraZeneca", Description: "Used to treat high blood pressure and heart failure"},
	{ID: "med-10", Name: "Lisinopril 10mg", Group: "ACE Inhibitor", Company: "AstraZeneca", Description: "Used to treat high blood pressure and heart failure"},
	{ID: "med-11", Name: "Lisinopril 20mg", Group: "ACE Inhibitor", Company: "AstraZeneca", Description: "Used to treat high blood pressure and heart failure"},
	{ID: "med-12", Name: "Metformin 500mg", Group: "Biguanide", Company: "Merck", Description: "Used to control blood sugar in type 2 diabetes"},
	{ID: "med-13", Name: "Metformin 850mg", Group: "Biguanide", Company: "Merck", Description: "Used to control blood sugar in type 2 diabetes"},
	{ID: "med-14", Name: "Metformin 1000mg", Group: "Biguanide", Company: "Merck", Description: "Used to control blood sugar in type 2 diabetes"},
}

// Published facet labels. These are maintained by hand and intentionally
// not derived from the record list: the faceted endpoints advertise the
// full label sets even where no medicine is seeded for a label yet.
var publishedGroups = []string{
	"ACE Inhibitor",
	"Angiotensin II Receptor Blocker (ARB)",
	"Antibiotic",
	"Anticoagulant",
	"Antiplatelet",
	"Beta Blocker",
	"Calcium Channel Blocker",
	"Diuretic",
	"Statin",
	"Non-Steroidal Anti-Inflammatory Drug (NSAID)",
	"Proton Pump Inhibitor",
	"Selective Serotonin Reuptake Inhibitor (SSRI)",
}

var publishedCompanies = []string{
	"AstraZeneca",
	"Bayer",
	"Bristol-Myers Squibb",
	"GlaxoSmithKline",
	"Johnson & Johnson",
	"Merck",
	"Novartis",
	"Pfizer",
	"Roche",
	"Sanofi",
}
