package usecase

import "strings"

// mapOption resolves a raw option ID through a label dictionary. Unknown IDs
// pass through unchanged: new flow-screen options ship ahead of the catalog,
// and dropping or rejecting them would lose user input. This is deliberate,
// not an oversight.
func mapOption(dict map[string]string, optionID string) string {
	if label, ok := dict[optionID]; ok {
		return label
	}
	return optionID
}

// mapOptions resolves each element of a multi-select (or a scalar promoted to
// a one-element list) through the same dictionary and joins the labels into
// the canonical comma-separated display form used for storage.
func mapOptions(dict map[string]string, optionIDs []string) string {
	if len(optionIDs) == 0 {
		return ""
	}

	labels := make([]string, 0, len(optionIDs))
	for _, id := range optionIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		labels = append(labels, mapOption(dict, id))
	}

	return strings.Join(labels, ", ")
}
