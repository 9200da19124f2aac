package render

import "strings"

// Quote wraps name in q and doubles every embedded q.
func Quote(name string, q byte) string {
	var sb strings.Builder
	sb.Grow(len(name) + 2)
	sb.WriteByte(q)
	for i := 0; i < len(name); i++ {
		if name[i] == q {
			sb.WriteByte(q)
		}
		sb.WriteByte(name[i])
	}
	sb.WriteByte(q)
	return sb.String()
}
