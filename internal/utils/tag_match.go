package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tagAliases maps shorthand a visitor might type or link with onto the
// canonical service tag used by the catalog.
var tagAliases = map[string]string{
	"angio":             "Angioplasty",
	"angioplasty":       "Angioplasty",
	"ptca":              "Angioplasty",
	"stent":             "Angioplasty",
	"cabg":              "Bypass Surgery",
	"bypass":            "Bypass Surgery",
	"heart bypass":      "Bypass Surgery",
	"valve":             "Valve Replacement",
	"tavr":              "Valve Replacement",
	"knee":              "Knee Replacement",
	"tkr":               "Knee Replacement",
	"hip":               "Hip Replacement",
	"thr":               "Hip Replacement",
	"spine":             "Spine Surgery",
	"spinal fusion":     "Spine Surgery",
	"disc":              "Spine Surgery",
	"brain tumor":       "Brain Tumor Surgery",
	"brain tumour":      "Brain Tumor Surgery",
	"ivf":               "IVF",
	"fertility":         "IVF",
	"kidney transplant": "Kidney Transplant",
	"renal transplant":  "Kidney Transplant",
	"liver transplant":  "Liver Transplant",
	"bone marrow":       "Bone Marrow Transplant",
	"bmt":               "Bone Marrow Transplant",
	"cancer":            "Oncology",
	"chemo":             "Oncology",
	"chemotherapy":      "Oncology",
	"cosmetic":          "Cosmetic Surgery",
	"plastic surgery":   "Cosmetic Surgery",
	"lasik":             "LASIK",
	"cataract":          "Cataract Surgery",
	"dental implant":    "Dental Implants",
	"dental implants":   "Dental Implants",
	"bariatric":         "Bariatric Surgery",
	"weight loss":       "Bariatric Surgery",
	"gastric sleeve":    "Bariatric Surgery",
	"pacemaker":         "Pacemaker Implantation",
	"electrophysiology": "Pacemaker Implantation",
	"health checkup":    "Health Checkup",
	"full body checkup": "Health Checkup",
	"executive checkup": "Health Checkup",
}

// NormalizeTag maps a raw tag onto its canonical form. Unknown tags are
// whitespace-collapsed and title-cased.
func NormalizeTag(tag string) string {
	key := strings.ToLower(strings.Join(strings.Fields(tag), " "))
	if key == "" {
		return ""
	}
	if canonical, ok := tagAliases[key]; ok {
		return canonical
	}
	// a Caser carries state, so one is built per call
	return cases.Title(language.English).String(key)
}

// NormalizeTags normalizes and de-duplicates tags, keeping first-seen order
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, raw := range tags {
		for _, part := range strings.Split(raw, ",") {
			t := NormalizeTag(part)
			if t == "" || seen[strings.ToLower(t)] {
				continue
			}
			seen[strings.ToLower(t)] = true
			out = append(out, t)
		}
	}
	return out
}

// TagKey is the case-folded canonical form of a tag. Two tags name the same
// service when their keys are equal.
func TagKey(tag string) string {
	return strings.ToLower(NormalizeTag(tag))
}
