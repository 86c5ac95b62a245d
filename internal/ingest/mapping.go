package ingest

// Mapping resolves, for each target field, the CSV column that supplies it.
// Callers hand in a source→target rename map; it is inverted once per request
// so per-row resolution is a plain lookup instead of a scan.
type Mapping map[string]string

func NewMapping(sourceToTarget map[string]string) Mapping {
	m := make(Mapping, len(sourceToTarget))
	for source, target := range sourceToTarget {
		m[target] = source
	}
	return m
}

// SourceFor returns the CSV column feeding target, defaulting to the field's
// own name when no rename was supplied.
func (m Mapping) SourceFor(target string) string {
	if s, ok := m[target]; ok && s != "" {
		return s
	}
	return target
}
