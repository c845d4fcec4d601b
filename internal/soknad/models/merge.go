package models

// SoknadJson is the loosely structured draft a caseworker edits. Partial
// updates arrive as fragments and are folded into the stored draft.
type SoknadJson map[string]any

// Merge folds oppdatering into the receiver: new scalar and array values win,
// nested objects are merged key by key. The receiver is returned for
// chaining.
func (s SoknadJson) Merge(oppdatering SoknadJson) SoknadJson {
	for felt, nyVerdi := range oppdatering {
		gammel, finnes := s[felt]
		gammeltObjekt, gammelErObjekt := gammel.(map[string]any)
		nyttObjekt, nyErObjekt := nyVerdi.(map[string]any)
		if finnes && gammelErObjekt && nyErObjekt {
			s[felt] = map[string]any(SoknadJson(gammeltObjekt).Merge(nyttObjekt))
			continue
		}
		s[felt] = nyVerdi
	}
	return s
}

// Kopi returns a deep copy so merges never leak into stored drafts.
func (s SoknadJson) Kopi() SoknadJson {
	kopi := make(SoknadJson, len(s))
	for felt, verdi := range s {
		if objekt, ok := verdi.(map[string]any); ok {
			kopi[felt] = map[string]any(SoknadJson(objekt).Kopi())
			continue
		}
		if liste, ok := verdi.([]any); ok {
			kopi[felt] = append([]any(nil), liste...)
			continue
		}
		kopi[felt] = verdi
	}
	return kopi
}
