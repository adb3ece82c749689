// Package literature serves a fixed set of curated article summaries keyed by
// condition area. The demo has no network backend: lookups are deterministic
// keyword buckets over static data, shaped like the PubMed records a real
// integration would return.
package literature

import (
	"strings"
)

// Article is one curated literature reference.
type Article struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Authors         string `json:"authors"`
	Abstract        string `json:"abstract"`
	Journal         string `json:"journal"`
	PublicationDate string `json:"publication_date"`
	URL             string `json:"url"`
}

// Search returns the article set for the first condition area whose keywords
// appear in the query, falling back to the general set. Buckets are checked
// in order: lung, thyroid, heart.
func Search(query string) []Article {
	q := strings.ToLower(query)

	switch {
	case containsAny(q, "lung", "cancer", "nsclc", "sclc"):
		return lungArticles
	case containsAny(q, "thyroid", "hyperthyroid", "hypothyroid"):
		return thyroidArticles
	case containsAny(q, "heart", "cardiac", "cardiovascular"):
		return heartArticles
	default:
		return generalArticles
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

var lungArticles = []Article{
	{
		ID:              "pubmed-lung-001",
		Title:           "Advances in Immunotherapy for Non-Small Cell Lung Cancer: Current Evidence and Future Directions",
		Authors:         "Chen L, Rodriguez M, Kumar S, et al.",
		Abstract:        "This comprehensive meta-analysis examines the efficacy of checkpoint inhibitors in NSCLC treatment. The study analyzes data from 15 randomized controlled trials involving 8,500 patients, demonstrating significant improvements in overall survival with pembrolizumab and nivolumab combinations. Key findings include a 32% reduction in mortality risk and improved quality of life metrics.",
		Journal:         "Journal of Clinical Oncology",
		PublicationDate: "2024-02-15",
		URL:             "https://pubmed.ncbi.nlm.nih.gov/lung-immunotherapy-2024",
	},
	{
		ID:              "pubmed-lung-002",
		Title:           "Targeted Therapy in EGFR-Mutated Lung Adenocarcinoma: Real-World Outcomes and Resistance Patterns",
		Authors:         "Wang H, Thompson K, Lee J, et al.",
		Abstract:        "A multicenter retrospective analysis of 2,150 patients with EGFR-mutated NSCLC treated with osimertinib. The study reports median progression-free survival of 18.9 months and identifies novel resistance mechanisms including T790M mutations and MET amplification. Treatment algorithms for sequential therapy are proposed.",
		Journal:         "The Lancet Oncology",
		PublicationDate: "2024-01-28",
		URL:             "https://pubmed.ncbi.nlm.nih.gov/egfr-targeted-therapy-2024",
	},
	{
		ID:              "pubmed-lung-003",
		Title:           "Early Detection of Lung Cancer: Integration of AI-Enhanced Low-Dose CT Screening",
		Authors:         "Martinez R, Brown A, Yamamoto T, et al.",
		Abstract:        "This prospective study evaluates AI-assisted lung cancer screening in 12,000 high-risk individuals. The AI system demonstrated 94.2% sensitivity and 87.8% specificity for detecting early-stage tumors, with a 25% reduction in false-positive rates compared to traditional radiology review.",
		Journal:         "New England Journal of Medicine",
		PublicationDate: "2024-03-05",
		URL:             "https://pubmed.ncbi.nlm.nih.gov/ai-lung-screening-2024",
	},
}

var thyroidArticles = []Article{
	{
		ID:              "pubmed-thyroid-001",
		Title:           "Precision Medicine in Thyroid Cancer: Molecular Profiling and Targeted Therapeutics",
		Authors:         "Davis M, Kim S, Anderson P, et al.",
		Abstract:        "This study presents comprehensive molecular characterization of 3,500 thyroid cancer samples, identifying actionable mutations in 78% of cases. Novel targeted therapies including lenvatinib and sorafenib show promising results in radioiodine-refractory differentiated thyroid cancer, with response rates exceeding 65%.",
		Journal:         "Nature Medicine",
		PublicationDate: "2024-01-12",
		URL:             "https://pubmed.ncbi.nlm.nih.gov/thyroid-precision-medicine-2024",
	},
	{
		ID:              "pubmed-thyroid-002",
		Title:           "Optimal Management of Subclinical Hypothyroidism: Updated Clinical Guidelines",
		Authors:         "Johnson R, Liu X, Garcia E, et al.",
		Abstract:        "A systematic review and meta-analysis of 42 studies involving 125,000 patients with subclinical hypothyroidism. Evidence supports treatment initiation when TSH >10 mIU/L or in symptomatic patients with TSH 4.5-10 mIU/L. Cardiovascular outcomes improve significantly with levothyroxine therapy.",
		Journal:         "European Journal of Endocrinology",
		PublicationDate: "2024-02-20",
		URL:             "https://pubmed.ncbi.nlm.nih.gov/subclinical-hypothyroid-2024",
	},
	{
		ID:              "pubmed-thyroid-003",
		Title:           "Hashimoto's Thyroiditis: Novel Biomarkers and Personalized Treatment Approaches",
		Authors:         "Wilson K, Patel N, O'Connor M, et al.",
		Abstract:        "This prospective cohort study of 1,800 patients with Hashimoto's thyroiditis identifies novel inflammatory biomarkers predictive of disease progression. Selenium supplementation and gluten-free dietary interventions show significant benefits in reducing thyroid peroxidase antibody levels and improving quality of life scores.",
		Journal:         "Thyroid Research",
		PublicationDate: "2024-03-18",
		URL:             "https://pubmed.ncbi.nlm.nih.gov/hashimotos-biomarkers-2024",
	},
}

var heartArticles = []Article{
	{
		ID:              "pubmed-heart-001",
		Title:           "SGLT2 Inhibitors in Heart Failure: Breakthrough Outcomes from the EMPEROR-Preserved Trial",
		Authors:         "Miller J, Clark R, Singh A, et al.",
		Abstract:        "The EMPEROR-Preserved trial demonstrates significant cardiovascular benefits of empagliflozin in heart failure with preserved ejection fraction. Among 5,988 patients, empagliflozin reduced the primary endpoint by 21%, with consistent benefits across diabetic and non-diabetic populations. Renal protection was also observed.",
		Journal:         "Circulation",
		PublicationDate: "2024-01-30",
		URL:             "https://pubmed.ncbi.nlm.nih.gov/sglt2-heart-failure-2024",
	},
	{
		ID:              "pubmed-heart-002",
		Title:           "Artificial Intelligence in Coronary Artery Disease Detection: Validation of Deep Learning Algorithms",
		Authors:         "Zhang L, Roberts C, Taylor M, et al.",
		Abstract:        "A multicenter validation study of AI algorithms for coronary artery disease detection using standard 12-lead ECGs. The deep learning model achieved 92.1% accuracy in identifying significant coronary stenosis, with potential for widespread screening applications in primary care settings.",
		Journal:         "Journal of the American College of Cardiology",
		PublicationDate: "2024-02-08",
		URL:             "https://pubmed.ncbi.nlm.nih.gov/ai-coronary-detection-2024",
	},
	{
		ID:              "pubmed-heart-003",
		Title:           "Novel Anticoagulation Strategies in Atrial Fibrillation: Real-World Evidence from 50,000 Patients",
		Authors:         "Thompson S, Lee H, Gonzalez R, et al.",
		Abstract:        "This large-scale real-world study compares outcomes of direct oral anticoagulants in atrial fibrillation management. Apixaban demonstrates superior safety profile with 35% reduction in major bleeding events compared to warfarin, while maintaining equivalent stroke prevention efficacy across diverse patient populations.",
		Journal:         "European Heart Journal",
		PublicationDate: "2024-03-12",
		URL:             "https://pubmed.ncbi.nlm.nih.gov/doac-atrial-fib-2024",
	},
}

var generalArticles = []Article{
	{
		ID:              "pubmed-general-001",
		Title:           "Integrated Approach to Multimorbidity Management in Specialized Care",
		Authors:         "Adams K, White S, Brown L, et al.",
		Abstract:        "This comprehensive review examines evidence-based strategies for managing patients with multiple chronic conditions affecting lung, thyroid, and cardiovascular systems. Coordinated care models demonstrate improved outcomes and reduced healthcare utilization.",
		Journal:         "Journal of Multimorbidity and Comorbidity",
		PublicationDate: "2024-02-25",
		URL:             "https://pubmed.ncbi.nlm.nih.gov/multimorbidity-management-2024",
	},
}
