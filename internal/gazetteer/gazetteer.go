package gazetteer

import "regexp"

// Tables holds the immutable lookup lists and compiled patterns used by the
// extraction pipeline and the fraud detector. Build one with Default at
// startup and share it; it is read-only after construction.
type Tables struct {
	// Skills is the case-folded union of the technical, soft-skill and
	// domain vocabularies, deduplicated.
	Skills []string

	// Cities is matched by case-insensitive substring, in order.
	Cities []string

	// Companies lists well-known employers, lowercase. Order matters for
	// tie-breaks.
	Companies []string

	// Institutions lists education institution markers, lowercase.
	Institutions []string

	// DegreeKeywords are the lowercase markers that flag a line as an
	// education line.
	DegreeKeywords []string

	// DegreeCanonical maps degree spellings to canonical labels. It is an
	// ordered list because the first matching pattern wins.
	DegreeCanonical []DegreePair

	// RoleKeywords flag a line as containing a job title.
	RoleKeywords []string

	// ExperienceHeaders open an experience section; SectionEnders close it.
	ExperienceHeaders []string
	SectionEnders     []string

	// FraudKeywords are suspicious phrases scanned over raw text, lowercase.
	FraudKeywords []string

	Email         *regexp.Regexp
	Phone         *regexp.Regexp
	URL           *regexp.Regexp
	Year          *regexp.Regexp
	YearRange     *regexp.Regexp
	NamePatterns  []*regexp.Regexp
	CompanySuffix []*regexp.Regexp
	Locations     []*regexp.Regexp
	Durations     []*regexp.Regexp
	EducationNoun *regexp.Regexp
	ExperienceAny *regexp.Regexp
	WordToken     *regexp.Regexp
}

// DegreePair is one entry of the ordered spelling -> canonical label mapping.
type DegreePair struct {
	Spelling string
	Label    string
}

var skillGroups = map[string][]string{
	"programming": {
		"python", "java", "javascript", "c++", "c#", "ruby", "go", "rust", "swift",
		"kotlin", "php", "typescript", "scala", "perl", "r", "matlab", "bash",
		"shell", "powershell", "html", "css", "sql", "plsql", "mongodb", "oracle",
		"mysql", "postgresql", "sqlite", "redis", "elasticsearch", "docker", "kubernetes",
		"jenkins", "git", "github", "gitlab", "bitbucket", "jira", "confluence",
		"aws", "azure", "gcp", "google cloud", "firebase", "heroku", "digitalocean",
		"react", "angular", "vue", "nodejs", "django", "flask", "spring", "laravel",
		"express", "fastapi", "tensorflow", "pytorch", "keras", "scikit-learn",
		"pandas", "numpy", "scipy", "matplotlib", "seplotly", "aborn", "tableau",
		"powerbi", "excel", "word", "powerpoint", "outlook", "teams", "slack",
		"rest api", "graphql", "grpc", "websocket", "microservices", "agile", "scrum",
		"kanban", "jira", "confluence", "linux", "unix", "windows", "macos",
		"networking", "security", "cybersecurity", "penetration testing", "firewall",
		"vpn", "tcp/ip", "dns", "dhcp", "load balancing", "cdn", "cache",
		"redis", "memcached", "rabbitmq", "kafka", "activemq", "spark", "hadoop",
		"hive", "pig", "sqoop", "flume", "zookeeper", "etl", "data warehouse",
		"data lake", "snowflake", "bigquery", "redshift", "databricks", "mlops",
		"ci/cd", "devops", "sre", "iot", "blockchain", "ethereum", "solidity",
	},
	"soft_skills": {
		"leadership", "communication", "teamwork", "problem solving", "analytical",
		"critical thinking", "creativity", "adaptability", "time management",
		"project management", "conflict resolution", "negotiation", "presentation",
		"writing", "interpersonal", "customer service", "client relations",
		"stakeholder management", "mentoring", "coaching", "collaboration",
		"attention to detail", "organization", "planning", "strategic thinking",
		"decision making", "initiative", "self-motivated", "fast learner",
	},
	"domain": {
		"finance", "banking", "insurance", "healthcare", "pharma", "retail",
		"e-commerce", "manufacturing", "logistics", "supply chain", "telecom",
		"media", "entertainment", "education", "government", "non-profit",
		"consulting", "legal", "real estate", "hospitality", "travel", "food",
		"automotive", "aerospace", "energy", "utilities", "mining", "construction",
	},
}

// Default builds the standard lookup tables. The lists are intentionally
// biased toward South-Indian/Telangana resumes, matching the population the
// registration portal serves.
func Default() *Tables {
	t := &Tables{
		Cities: []string{
			"hyderabad", "secunderabad", "bangalore", "bengaluru", "chennai", "mumbai",
			"delhi", "pune", "kolkata", "warangal", "karimnagar", "nizamabad", "khammam",
			"adilabad", "kakinada", "vijayawada", "visakhapatnam", "tirupati", "nellore",
			"gurgaon", "noida", "chandigarh", "jaipur", "ahmedabad", "lucknow", "coimbatore",
		},
		Companies: []string{
			"tcs", "infosys", "wipro", "accenture", "cognizant", "capgemini",
			"hcl", "tech mahindra", "amazon", "google", "microsoft", "apple",
			"flipkart", "paytm", "ola", "uber", "swiggy", "zomato",
			"facebook", "meta", "netflix", "adobe", "oracle", "salesforce",
			"ibm", "dell", "hp", "intel", "amd", "nvidia", "qualcomm",
			// " dunzo" keeps its leading space; the upstream list had it and
			// trimming changes what the substring match hits.
			"byju", "unacademy", "upgrad", "swiggy", "rapido", " dunzo",
		},
		Institutions: []string{
			"iit", "nit", "iiit", "bits", "vit", "amrita", "manipal",
			"jntu", "ou", "osmania", "deccan", "gurunanak",
			"nawab", "chancellor", "university", "college", "institute",
			"rvce", "jntuh", "jntuk", "iim", "iisc",
		},
		DegreeKeywords: []string{
			"b.tech", "b.e", "b.sc", "b.com", "b.a", "bba", "bca",
			"m.tech", "m.e", "m.sc", "m.com", "m.a", "mba", "mca",
			"ph.d", "phd", "doctorate", "diploma", "certificate",
			"10th", "12th", "ssc", "hsc", "cbse", "icse", "intermediate",
		},
		DegreeCanonical: []DegreePair{
			{"b.tech", "B.Tech"},
			{"b.e.", "B.E."},
			{"b.e ", "B.E."},
			{"b.sc", "B.Sc"},
			{"b.com", "B.Com"},
			{"b.a", "B.A"},
			{"bba", "BBA"},
			{"bca", "BCA"},
			{"m.tech", "M.Tech"},
			{"m.e.", "M.E."},
			{"m.sc", "M.Sc"},
			{"m.com", "M.Com"},
			{"mba", "MBA"},
			{"mca", "MCA"},
			{"ph.d", "Ph.D"},
			{"phd", "Ph.D"},
		},
		RoleKeywords: []string{
			"engineer", "developer", "manager", "analyst", "designer",
			"consultant", "architect", "lead", "senior", "junior",
			"intern", "trainee", "associate", "specialist", "coordinator",
			"executive", "officer", "supervisor", "head", "director", "vp",
			"founder", "co-founder", "ceo", "cto", "cfo", "product",
		},
		ExperienceHeaders: []string{
			"experience", "employment", "work history", "professional background", "career",
		},
		SectionEnders: []string{
			"education", "skills", "projects", "certifications", "academic",
		},
		FraudKeywords: []string{
			"guarantee job", "pay fee", "no interview", "job without",
			"immediate joining", "zero interview", "direct placement",
			"refund money", "registration fee", "processing fee",
		},

		Email:     regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
		Phone:     regexp.MustCompile(`(\+91)?[6-9]\d{9}`),
		URL:       regexp.MustCompile(`https?://[^\s]+`),
		Year:      regexp.MustCompile(`(?:19|20)\d{2}`),
		YearRange: regexp.MustCompile(`(?:19|20)\d{2}\s*[-–]\s*(?:19|20)?\d{2}`),
		NamePatterns: []*regexp.Regexp{
			regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})`),
			regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z]\.?\s*)?(?:\s+[A-Z][a-z]+)*)`),
		},
		CompanySuffix: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:at|@|in|with|working at|employed at|joined)\s+([A-Z][A-Za-z\s&]+?)(?:\s*[-|,]|$)`),
			regexp.MustCompile(`(?i)^([A-Z][A-Za-z\s&]+?)\s+(?:Pvt\.?|Ltd\.?|Inc\.?|Technologies?|Solutions?|Services?|Systems?|Consulting?)`),
		},
		Locations: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:address|location|city|residing|located)[:\s]+([A-Za-z\s,]+)`),
			regexp.MustCompile(`(?i)(?:from|based in)[:\s]+([A-Za-z\s,]+)`),
		},
		Durations: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[\s,]+\d{4}[\s,-]+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)?[a-z]*[\s,]?\d{0,4}`),
			regexp.MustCompile(`(?i)(?:19|20)\d{2}\s*[-–]\s*(?:present|current|now|19|20)?\d{0,4}`),
			regexp.MustCompile(`(?i)\d+\s*(?:years?|months?)\s*(?:of)?\s*(?:experience|exp)`),
		},
		EducationNoun: regexp.MustCompile(`university|college|institute|school|academy|institution`),
		ExperienceAny: regexp.MustCompile(`\d+\s*(?:years?|months?)\s*(?:of)?\s*(?:experience|exp)`),
		WordToken:     regexp.MustCompile(`\b\w+\b`),
	}

	t.Skills = flattenSkills()
	return t
}

func flattenSkills() []string {
	seen := make(map[string]bool, 256)
	out := make([]string, 0, 256)
	for _, group := range []string{"programming", "soft_skills", "domain"} {
		for _, s := range skillGroups[group] {
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
