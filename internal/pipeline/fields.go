package pipeline

import (
	"sort"
	"strings"

	"catalogue-etl/internal/model"
	"catalogue-etl/pkg/utils"
)

// handsetTerms buckets records into the handset category. Kept
// separate from the inclusion filter's term list on purpose: they
// answer different questions (include at all vs. which bucket).
var handsetTerms = []string{"iphone", "galaxy", "pixel", "moto"}

// DetermineCategory buckets a record as a handset, a pay monthly
// tariff, or a generic device.
func DetermineCategory(rec model.RawProduct) string {
	name := strings.ToLower(utils.String(rec["name"]))
	code := strings.ToLower(utils.String(rec["code"]))

	for _, term := range handsetTerms {
		if strings.Contains(name, term) || strings.Contains(code, term) {
			return model.CategoryHandset
		}
	}
	if strings.Contains(name, "tariff") || strings.Contains(name, "plan") {
		return model.CategoryPayMonthly
	}
	return model.CategoryDevice
}

// ExtractNetworkTechnology returns the value of the first
// specification whose name mentions "network", scanning groups in
// source order. Nil when no such specification exists.
func ExtractNetworkTechnology(rec model.RawProduct) *string {
	groups, _ := rec["specificationGroups"].([]interface{})
	for _, g := range groups {
		group, ok := g.(map[string]interface{})
		if !ok {
			continue
		}
		specs, _ := group["specifications"].([]interface{})
		for _, s := range specs {
			spec, ok := s.(map[string]interface{})
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(utils.String(spec["name"])), "network") {
				value := utils.String(spec["value"])
				return &value
			}
		}
	}
	return nil
}

// ExtractStorageOptions collects every non-empty capacity name across
// all device options, deduplicated and sorted.
func ExtractStorageOptions(rec model.RawProduct) []string {
	options := make(map[string]struct{})
	for _, o := range deviceOptions(rec) {
		capacities, _ := o["capacityValues"].([]interface{})
		for _, c := range capacities {
			capacity, ok := c.(map[string]interface{})
			if !ok {
				continue
			}
			if name := utils.String(capacity["name"]); name != "" {
				options[name] = struct{}{}
			}
		}
	}
	return sortedOptions(options)
}

// ExtractColorOptions collects every non-empty color name across all
// device options, deduplicated and sorted.
func ExtractColorOptions(rec model.RawProduct) []string {
	options := make(map[string]struct{})
	for _, o := range deviceOptions(rec) {
		color, _ := o["color"].(map[string]interface{})
		if name := utils.String(color["name"]); name != "" {
			options[name] = struct{}{}
		}
	}
	return sortedOptions(options)
}

// deviceOptions returns the record's device-option entries, treating
// missing or malformed structures as empty.
func deviceOptions(rec model.RawProduct) []map[string]interface{} {
	raw, _ := rec["deviceOptions"].([]interface{})
	opts := make([]map[string]interface{}, 0, len(raw))
	for _, o := range raw {
		if opt, ok := o.(map[string]interface{}); ok {
			opts = append(opts, opt)
		}
	}
	return opts
}

func sortedOptions(set map[string]struct{}) []string {
	options := make([]string, 0, len(set))
	for name := range set {
		options = append(options, name)
	}
	sort.Strings(options)
	return options
}
