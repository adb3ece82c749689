package catalog

// Built-in reference data for the demo's three specialty areas: lung cancer,
// thyroid disorders and heart disease. Fixed at build time; file-based
// overrides go through Load.

var builtinDiseases = []Disease{
	// Lung cancer
	{
		Name:            "Non-Small Cell Lung Cancer (NSCLC)",
		Symptoms:        []string{"persistent cough", "shortness of breath", "chest pain", "coughing up blood", "weight loss", "fatigue", "hoarseness", "bone pain"},
		Description:     "The most common type of lung cancer, accounting for about 85% of all lung cancers.",
		Severity:        9,
		Precautions:     []string{"quit smoking immediately", "avoid secondhand smoke", "test home for radon", "avoid asbestos exposure"},
		Treatments:      []string{"surgery", "chemotherapy", "radiation therapy", "targeted therapy", "immunotherapy"},
		RiskFactors:     []string{"smoking", "secondhand smoke", "radon exposure", "asbestos", "family history"},
		DiagnosticTests: []string{"chest X-ray", "CT scan", "PET scan", "biopsy", "molecular testing"},
	},
	{
		Name:            "Small Cell Lung Cancer (SCLC)",
		Symptoms:        []string{"rapid onset cough", "severe shortness of breath", "chest pain", "weight loss", "fatigue", "swelling in face"},
		Description:     "A fast-growing type of lung cancer that spreads quickly to other parts of the body.",
		Severity:        10,
		Precautions:     []string{"immediate smoking cessation", "avoid all tobacco products", "regular follow-ups"},
		Treatments:      []string{"chemotherapy", "radiation therapy", "immunotherapy", "prophylactic cranial irradiation"},
		RiskFactors:     []string{"heavy smoking", "exposure to chemicals", "radiation exposure"},
		DiagnosticTests: []string{"chest CT", "brain MRI", "bone scan", "bronchoscopy", "blood tests"},
	},
	{
		Name:            "Lung Adenocarcinoma",
		Symptoms:        []string{"persistent cough", "shortness of breath", "chest pain", "weight loss", "fatigue", "pleural effusion"},
		Description:     "A subtype of non-small cell lung cancer that often occurs in the outer areas of the lungs.",
		Severity:        8,
		Precautions:     []string{"smoking cessation", "regular screening if high risk", "healthy lifestyle"},
		Treatments:      []string{"surgical resection", "targeted therapy", "chemotherapy", "radiation therapy"},
		RiskFactors:     []string{"smoking", "genetic mutations", "environmental toxins"},
		DiagnosticTests: []string{"low-dose CT screening", "tissue biopsy", "genetic testing", "staging scans"},
	},

	// Thyroid disorders
	{
		Name:            "Hypothyroidism",
		Symptoms:        []string{"fatigue", "weight gain", "cold intolerance", "dry skin", "hair loss", "constipation", "depression", "memory problems"},
		Description:     "A condition where the thyroid gland doesn't produce enough thyroid hormones.",
		Severity:        4,
		Precautions:     []string{"regular thyroid monitoring", "consistent medication timing", "iodine-rich diet"},
		Treatments:      []string{"levothyroxine replacement therapy", "lifestyle modifications", "regular monitoring"},
		RiskFactors:     []string{"autoimmune disease", "family history", "age over 60", "previous thyroid surgery"},
		DiagnosticTests: []string{"TSH test", "Free T4 test", "thyroid antibodies", "thyroid ultrasound"},
	},
	{
		Name:            "Hyperthyroidism",
		Symptoms:        []string{"weight loss", "rapid heartbeat", "anxiety", "tremors", "sweating", "heat intolerance", "insomnia", "frequent bowel movements"},
		Description:     "A condition where the thyroid gland produces too much thyroid hormone.",
		Severity:        6,
		Precautions:     []string{"avoid excessive iodine", "manage stress", "regular heart monitoring"},
		Treatments:      []string{"antithyroid medications", "radioactive iodine", "beta-blockers", "surgery"},
		RiskFactors:     []string{"Graves disease", "toxic nodular goiter", "excessive iodine intake"},
		DiagnosticTests: []string{"TSH test", "Free T3 and T4", "thyroid scan", "radioactive iodine uptake"},
	},
	{
		Name:            "Thyroid Cancer",
		Symptoms:        []string{"neck lump", "difficulty swallowing", "voice changes", "neck pain", "swollen lymph nodes"},
		Description:     "Cancer that forms in the tissues of the thyroid gland.",
		Severity:        7,
		Precautions:     []string{"regular neck examination", "avoid radiation exposure", "genetic counseling if family history"},
		Treatments:      []string{"thyroidectomy", "radioactive iodine therapy", "hormone therapy", "chemotherapy"},
		RiskFactors:     []string{"radiation exposure", "family history", "genetic syndromes", "iodine deficiency"},
		DiagnosticTests: []string{"thyroid ultrasound", "fine needle biopsy", "blood tests", "genetic testing"},
	},
	{
		Name:            "Hashimoto's Thyroiditis",
		Symptoms:        []string{"fatigue", "weight gain", "depression", "muscle weakness", "joint pain", "dry skin", "hair thinning"},
		Description:     "An autoimmune condition that causes the immune system to attack the thyroid gland.",
		Severity:        5,
		Precautions:     []string{"stress management", "selenium supplementation", "gluten-free diet consideration"},
		Treatments:      []string{"levothyroxine therapy", "selenium supplements", "stress reduction"},
		RiskFactors:     []string{"family history", "other autoimmune diseases", "pregnancy", "stress"},
		DiagnosticTests: []string{"TPO antibodies", "thyroglobulin antibodies", "TSH test", "thyroid ultrasound"},
	},

	// Heart disease
	{
		Name:            "Coronary Artery Disease",
		Symptoms:        []string{"chest pain", "shortness of breath", "fatigue", "irregular heartbeat", "dizziness", "nausea"},
		Description:     "The most common type of heart disease caused by narrowed or blocked coronary arteries.",
		Severity:        8,
		Precautions:     []string{"heart-healthy diet", "regular exercise", "stress management", "smoking cessation"},
		Treatments:      []string{"lifestyle changes", "medications", "angioplasty", "bypass surgery"},
		RiskFactors:     []string{"high cholesterol", "high blood pressure", "diabetes", "smoking", "family history"},
		DiagnosticTests: []string{"ECG", "stress test", "echocardiogram", "cardiac catheterization", "CT angiography"},
	},
	{
		Name:            "Heart Attack (Myocardial Infarction)",
		Symptoms:        []string{"severe chest pain", "shortness of breath", "nausea", "sweating", "lightheadedness", "pain in arm or jaw"},
		Description:     "Occurs when blood flow to part of the heart muscle is blocked, usually by a blood clot.",
		Severity:        10,
		Precautions:     []string{"immediate emergency care", "lifestyle modifications", "medication compliance"},
		Treatments:      []string{"emergency angioplasty", "clot-busting drugs", "bypass surgery", "medications"},
		RiskFactors:     []string{"coronary artery disease", "high blood pressure", "diabetes", "smoking", "age"},
		DiagnosticTests: []string{"ECG", "cardiac enzymes", "echocardiogram", "coronary angiography"},
	},
	{
		Name:            "Heart Failure",
		Symptoms:        []string{"shortness of breath", "fatigue", "swollen legs", "rapid weight gain", "persistent cough", "reduced exercise tolerance"},
		Description:     "A condition where the heart muscle doesn't pump blood as well as it should.",
		Severity:        8,
		Precautions:     []string{"salt restriction", "fluid monitoring", "daily weight checks", "medication adherence"},
		Treatments:      []string{"ACE inhibitors", "beta-blockers", "diuretics", "lifestyle changes", "device therapy"},
		RiskFactors:     []string{"coronary artery disease", "high blood pressure", "diabetes", "previous heart attack"},
		DiagnosticTests: []string{"echocardiogram", "BNP blood test", "chest X-ray", "stress test", "cardiac MRI"},
	},
	{
		Name:            "Atrial Fibrillation",
		Symptoms:        []string{"irregular heartbeat", "palpitations", "shortness of breath", "fatigue", "dizziness", "chest pain"},
		Description:     "An irregular and often rapid heart rate that can increase risk of stroke and other heart complications.",
		Severity:        6,
		Precautions:     []string{"stroke prevention", "rate control", "avoid triggers", "regular monitoring"},
		Treatments:      []string{"blood thinners", "rate control medications", "rhythm control", "ablation"},
		RiskFactors:     []string{"age", "heart disease", "high blood pressure", "diabetes", "sleep apnea"},
		DiagnosticTests: []string{"ECG", "Holter monitor", "echocardiogram", "stress test", "blood tests"},
	},
	{
		Name:            "Hypertensive Heart Disease",
		Symptoms:        []string{"shortness of breath", "chest pain", "fatigue", "irregular heartbeat", "dizziness"},
		Description:     "Heart problems caused by high blood pressure over time.",
		Severity:        7,
		Precautions:     []string{"blood pressure control", "salt restriction", "regular exercise", "stress management"},
		Treatments:      []string{"antihypertensive medications", "lifestyle modifications", "regular monitoring"},
		RiskFactors:     []string{"chronic high blood pressure", "diabetes", "obesity", "smoking"},
		DiagnosticTests: []string{"blood pressure monitoring", "echocardiogram", "ECG", "stress test"},
	},
}

var builtinDrugs = []Drug{
	// Lung cancer medications
	{BrandName: "Opdivo", GenericName: "Nivolumab", NDC: 12001, Dosage: 240, PurchasePrice: 1200.00, SellPrice: 2400.00, Indication: "Non-small cell lung cancer", Category: "Immunotherapy"},
	{BrandName: "Keytruda", GenericName: "Pembrolizumab", NDC: 12002, Dosage: 200, PurchasePrice: 1500.00, SellPrice: 3000.00, Indication: "Lung cancer", Category: "Immunotherapy"},
	{BrandName: "Tagrisso", GenericName: "Osimertinib", NDC: 12003, Dosage: 80, PurchasePrice: 800.00, SellPrice: 1600.00, Indication: "EGFR-mutated lung cancer", Category: "Targeted therapy"},
	{BrandName: "Carboplatin", GenericName: "Carboplatin", NDC: 12004, Dosage: 450, PurchasePrice: 150.00, SellPrice: 300.00, Indication: "Lung cancer", Category: "Chemotherapy"},

	// Thyroid medications
	{BrandName: "Synthroid", GenericName: "Levothyroxine", NDC: 13001, Dosage: 100, PurchasePrice: 25.00, SellPrice: 50.00, Indication: "Hypothyroidism", Category: "Hormone replacement"},
	{BrandName: "Cytomel", GenericName: "Liothyronine", NDC: 13002, Dosage: 25, PurchasePrice: 45.00, SellPrice: 90.00, Indication: "Hypothyroidism", Category: "Hormone replacement"},
	{BrandName: "Tapazole", GenericName: "Methimazole", NDC: 13003, Dosage: 10, PurchasePrice: 30.00, SellPrice: 60.00, Indication: "Hyperthyroidism", Category: "Antithyroid"},
	{BrandName: "Lenvima", GenericName: "Lenvatinib", NDC: 13004, Dosage: 10, PurchasePrice: 600.00, SellPrice: 1200.00, Indication: "Thyroid cancer", Category: "Targeted therapy"},

	// Heart disease medications
	{BrandName: "Lipitor", GenericName: "Atorvastatin", NDC: 14001, Dosage: 40, PurchasePrice: 35.00, SellPrice: 70.00, Indication: "High cholesterol, coronary artery disease", Category: "Statin"},
	{BrandName: "Metoprolol", GenericName: "Metoprolol", NDC: 14002, Dosage: 50, PurchasePrice: 20.00, SellPrice: 40.00, Indication: "High blood pressure, heart failure", Category: "Beta-blocker"},
	{BrandName: "Plavix", GenericName: "Clopidogrel", NDC: 14003, Dosage: 75, PurchasePrice: 80.00, SellPrice: 160.00, Indication: "Heart attack prevention", Category: "Antiplatelet"},
	{BrandName: "Entresto", GenericName: "Sacubitril/Valsartan", NDC: 14004, Dosage: 97, PurchasePrice: 200.00, SellPrice: 400.00, Indication: "Heart failure", Category: "ARB/NEP inhibitor"},
}

// Default returns a catalog built from the built-in reference data.
func Default() *Catalog {
	return New(builtinDiseases, builtinDrugs)
}
