package extraction

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// MatchWithJD reconciles a resume skill list against a job description skill
// list. Both inputs are normalized to lowercase sets before comparison;
// matching is the intersection, missing is what the JD wants and the resume
// lacks. The score is the matched share of JD skills as a percentage,
// rounded to two decimals, and defined as 0 when the JD has no skills at
// all.
func MatchWithJD(resumeSkills, jdSkills []string) types.MatchReport {
	resumeSet := toLowerSet(resumeSkills)
	jdSet := toLowerSet(jdSkills)

	matching := make([]string, 0)
	missing := make([]string, 0)
	for skill := range jdSet {
		if _, ok := resumeSet[skill]; ok {
			matching = append(matching, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matching)
	sort.Strings(missing)

	score := 0.0
	if len(jdSet) > 0 {
		score = round2(float64(len(matching)) / float64(len(jdSet)) * 100)
	}

	return types.MatchReport{
		Score:         score,
		Matching:      matching,
		Missing:       missing,
		MatchedCount:  len(matching),
		TotalJDSkills: len(jdSet),
	}
}

func toLowerSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
