package intent

// Sanitize enforces the taxonomy invariants on any classifier output, model
// or heuristic. It is pure, total, and idempotent: invalid enum values are
// dropped rather than failing, empty sequences get defaults, and a slot bag
// with nothing left in it becomes absent.
func Sanitize(in Intent) Intent {
	out := in

	out.Sections = normalizeSections(in.Sections)
	if len(out.Sections) == 0 {
		out.Sections = DefaultSections()
	}

	if len(out.Domains) == 0 {
		out.Domains = DefaultDomains()
	}

	if in.Slots != nil {
		slots := *in.Slots

		slots.SectionFocus = normalizeSections(slots.SectionFocus)

		if slots.CourtLevel != "" {
			if level, ok := NormalizeCourtLevel(slots.CourtLevel); ok {
				slots.CourtLevel = level
			} else {
				slots.CourtLevel = ""
			}
		}

		if slots.MoneyTerms != nil && slots.MoneyTerms.Empty() {
			slots.MoneyTerms = nil
		}

		if slots.Empty() {
			out.Slots = nil
		} else {
			out.Slots = &slots
		}
	}

	return out
}
