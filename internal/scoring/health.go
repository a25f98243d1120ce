// Package scoring holds the two read-only consumers of an extracted record:
// the completeness (health) scorer and the fraud risk detector. Both are
// pure functions of a record snapshot and are recomputed in full whenever
// the snapshot changes.
package scoring

import "fmt"

// HealthScore reports profile completeness on a 0-100 scale, with one
// suggestion per unmet criterion in fixed evaluation order: email, phone,
// education, experience, skills, location.
type HealthScore struct {
	TotalScore         int      `json:"total_score"`
	EmailPresent       bool     `json:"email_present"`
	PhonePresent       bool     `json:"phone_present"`
	EducationDetected  bool     `json:"education_detected"`
	ExperienceDetected bool     `json:"experience_detected"`
	SkillsCount        int      `json:"skills_count"`
	AddressDetected    bool     `json:"address_detected"`
	Suggestions        []string `json:"suggestions"`
}

const (
	emailWeight      = 10
	phoneWeight      = 10
	educationWeight  = 20
	experienceWeight = 20
	skillsWeight     = 20
	locationWeight   = 20

	skillsFullCreditCount = 5
	perSkillCredit        = 4
)

// CalculateHealth scores completeness over the given fields. The weights sum
// to exactly 100; the clamp is defensive only.
func CalculateHealth(email, phone string, educationCount, experienceCount int, skills []string, location string) HealthScore {
	score := 0
	suggestions := make([]string, 0, 6)

	emailPresent := email != ""
	if emailPresent {
		score += emailWeight
	} else {
		suggestions = append(suggestions, "Add your email address for contact")
	}

	phonePresent := phone != ""
	if phonePresent {
		score += phoneWeight
	} else {
		suggestions = append(suggestions, "Add your phone number for contact")
	}

	educationDetected := educationCount > 0
	if educationDetected {
		score += educationWeight
	} else {
		suggestions = append(suggestions, "Add your educational qualifications")
	}

	experienceDetected := experienceCount > 0
	if experienceDetected {
		score += experienceWeight
	} else {
		suggestions = append(suggestions, "Add your work experience")
	}

	skillsCount := len(skills)
	switch {
	case skillsCount >= skillsFullCreditCount:
		score += skillsWeight
	case skillsCount > 0:
		score += skillsCount * perSkillCredit
		suggestions = append(suggestions, fmt.Sprintf("Add more skills (currently %d, recommend at least %d)", skillsCount, skillsFullCreditCount))
	default:
		suggestions = append(suggestions, "Add your technical and soft skills")
	}

	addressDetected := location != ""
	if addressDetected {
		score += locationWeight
	} else {
		suggestions = append(suggestions, "Add your location/address")
	}

	return HealthScore{
		TotalScore:         clampScore(score),
		EmailPresent:       emailPresent,
		PhonePresent:       phonePresent,
		EducationDetected:  educationDetected,
		ExperienceDetected: experienceDetected,
		SkillsCount:        skillsCount,
		AddressDetected:    addressDetected,
		Suggestions:        suggestions,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
