package notificaciones

import (
	"fmt"
	"time"

	"github.com/jfarias/avicontrol/internal/model"
)

// relativeAge renders a coarse "how long ago" string for a list line.
func relativeAge(ts model.Timestamp) string {
	if ts.IsZero() {
		return ""
	}

	d := time.Since(ts.Time)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
