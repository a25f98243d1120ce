package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"registration-backend/internal/gazetteer"
)

// Risk labels, from the documented score boundaries: below 25 Low, below 50
// Moderate, otherwise High.
const (
	RiskLow      = "Low"
	RiskModerate = "Moderate"
	RiskHigh     = "High"
)

// FraudFlag is one triggered check.
type FraudFlag struct {
	Check    string `json:"check"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// FraudReport is the additive risk assessment for one record snapshot.
type FraudReport struct {
	FraudRiskScore int         `json:"fraud_risk_score"`
	RiskLabel      string      `json:"risk_label"`
	Flags          []FraudFlag `json:"flags"`
}

const (
	phoneLengthPenalty   = 20
	phonePrefixPenalty   = 15
	emailPenalty         = 15
	skillsPenalty        = 15
	experienceAgePenalty = 25
	keywordPenalty       = 25

	excessiveSkillsCount = 50
	workingAgeFloor      = 18
)

var (
	nonDigits       = regexp.MustCompile(`[^\d]`)
	strictEmailExpr = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// FraudDetector runs the rule-based risk checks against an extracted record
// plus its raw text. Checks are independent and additive; the total is
// clamped to 100.
type FraudDetector struct {
	Tables *gazetteer.Tables
}

// Analyze scores the inputs. Age is an optional extension point: pass 0 when
// it was not supplied and the experience-vs-age check is skipped. Flags keep
// check order: phone, email, skills, experience/age, then keyword flags in
// gazetteer order.
func (d FraudDetector) Analyze(phone, email string, skills []string, experienceCount int, rawText string, age int) FraudReport {
	flags := make([]FraudFlag, 0, 4)
	total := 0

	if phone != "" {
		if score, flag := checkPhone(phone); flag != nil {
			total += score
			flags = append(flags, *flag)
		}
	}
	if email != "" {
		if score, flag := checkEmail(email); flag != nil {
			total += score
			flags = append(flags, *flag)
		}
	}
	if len(skills) > 0 {
		if score, flag := checkSkills(skills); flag != nil {
			total += score
			flags = append(flags, *flag)
		}
	}
	if age > 0 && experienceCount > 0 {
		if score, flag := checkExperienceAge(experienceCount, age); flag != nil {
			total += score
			flags = append(flags, *flag)
		}
	}
	if rawText != "" {
		score, keywordFlags := d.checkSuspiciousKeywords(rawText)
		total += score
		flags = append(flags, keywordFlags...)
	}

	score := total
	if score > 100 {
		score = 100
	}

	return FraudReport{
		FraudRiskScore: score,
		RiskLabel:      RiskLabelFor(score),
		Flags:          flags,
	}
}

// RiskLabelFor maps a clamped score to its label. Boundary values are exact:
// 24 is Low, 25 Moderate, 49 Moderate, 50 High.
func RiskLabelFor(score int) string {
	switch {
	case score < 25:
		return RiskLow
	case score < 50:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// checkPhone validates digit count then prefix. The length check
// short-circuits, so the two penalties are mutually exclusive.
func checkPhone(phone string) (int, *FraudFlag) {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) != 10 {
		return phoneLengthPenalty, &FraudFlag{
			Check:    "phone_invalid",
			Severity: "high",
			Message:  fmt.Sprintf("Phone number must be 10 digits. Found: %s", phone),
		}
	}
	switch digits[0] {
	case '6', '7', '8', '9':
		return 0, nil
	}
	return phonePrefixPenalty, &FraudFlag{
		Check:    "phone_invalid",
		Severity: "medium",
		Message:  fmt.Sprintf("Phone number should start with 6, 7, 8, or 9. Found: %s", phone),
	}
}

func checkEmail(email string) (int, *FraudFlag) {
	if strictEmailExpr.MatchString(email) {
		return 0, nil
	}
	return emailPenalty, &FraudFlag{
		Check:    "email_invalid",
		Severity: "medium",
		Message:  fmt.Sprintf("Invalid email format: %s", email),
	}
}

func checkSkills(skills []string) (int, *FraudFlag) {
	if len(skills) <= excessiveSkillsCount {
		return 0, nil
	}
	return skillsPenalty, &FraudFlag{
		Check:    "excessive_skills",
		Severity: "medium",
		Message:  fmt.Sprintf("Excessive skills detected (%d). This may indicate false information.", len(skills)),
	}
}

func checkExperienceAge(experienceYears, age int) (int, *FraudFlag) {
	if experienceYears <= age-workingAgeFloor {
		return 0, nil
	}
	return experienceAgePenalty, &FraudFlag{
		Check:    "experience_age_mismatch",
		Severity: "high",
		Message:  fmt.Sprintf("Experience (%d years) exceeds plausible age (%d years)", experienceYears, age),
	}
}

// checkSuspiciousKeywords adds a full penalty for every keyword hit. There
// is no per-check cap before the overall clamp.
func (d FraudDetector) checkSuspiciousKeywords(text string) (int, []FraudFlag) {
	lower := strings.ToLower(text)
	var flags []FraudFlag
	score := 0
	for _, keyword := range d.Tables.FraudKeywords {
		if strings.Contains(lower, keyword) {
			score += keywordPenalty
			flags = append(flags, FraudFlag{
				Check:    "suspicious_keyword",
				Severity: "high",
				Message:  fmt.Sprintf("Suspicious keyword detected: '%s'", keyword),
			})
		}
	}
	return score, flags
}
