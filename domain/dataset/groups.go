package dataset

import "regexp"

// DiagnosisGroup is the two-sample partition used for differential expression
type DiagnosisGroup string

const (
	GroupTumor      DiagnosisGroup = "tumor"
	GroupNormal     DiagnosisGroup = "normal"
	GroupUnassigned DiagnosisGroup = ""
)

var (
	tumorPattern  = regexp.MustCompile(`(?i)tumor|malignant`)
	normalPattern = regexp.MustCompile(`(?i)normal|benign`)
)

// ClassifyDiagnosis maps a free-text diagnosis onto a group. A value matching
// neither pattern, or both at once, gets no group membership.
func ClassifyDiagnosis(diagnosis string) DiagnosisGroup {
	isTumor := tumorPattern.MatchString(diagnosis)
	isNormal := normalPattern.MatchString(diagnosis)
	if isTumor == isNormal {
		return GroupUnassigned
	}
	if isTumor {
		return GroupTumor
	}
	return GroupNormal
}
