package bncc

import "strings"

// Placement says where a record goes: one or more bands, under one group.
type Placement struct {
	Stage Stage
	Bands []BandKey
	Group string
}

var earlyChildhoodPrefixes = []struct {
	prefix string
	band   BandKey
}{
	{"EI01", BandBebes},
	{"EI02", BandBemPequenas},
	{"EI03", BandPequenas},
}

// subjectMarkers route a code to grade-school classification when found anywhere in it.
var subjectMarkers = []string{"LP", "MA", "CI", "GE", "HI", "AR", "EF", "ER"}

// Classify decides the placement of code. It reports false when the record
// must be dropped: no known prefix or marker, a grade-school code shorter than
// six characters, or a grade token with no band.
func Classify(code string) (Placement, bool) {
	for _, p := range earlyChildhoodPrefixes {
		if strings.HasPrefix(code, p.prefix) {
			return Placement{
				Stage: StageEarlyChildhood,
				Bands: []BandKey{p.band},
				Group: groupName(fieldsOfExperience, token(code, 4, 6)),
			}, true
		}
	}

	if !hasSubjectMarker(code) || len(code) < 6 {
		return Placement{}, false
	}

	grade := code[2:4]
	var keys []BandKey
	if span, ok := multiGrade[grade]; ok {
		for _, g := range span {
			keys = append(keys, gradeBands[g])
		}
	} else if key, ok := gradeBands[grade]; ok {
		keys = []BandKey{key}
	} else {
		return Placement{}, false
	}

	return Placement{
		Stage: StageElementary,
		Bands: keys,
		Group: groupName(subjects, code[4:6]),
	}, true
}

func hasSubjectMarker(code string) bool {
	for _, m := range subjectMarkers {
		if strings.Contains(code, m) {
			return true
		}
	}
	return false
}

// token returns code[from:to] clipped to the code length.
func token(code string, from, to int) string {
	if from >= len(code) {
		return ""
	}
	if to > len(code) {
		to = len(code)
	}
	return code[from:to]
}

func groupName(table map[string]string, tok string) string {
	if name, ok := table[tok]; ok {
		return name
	}
	return OtherGroup
}
