package domain

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
