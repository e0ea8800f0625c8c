package depixel

import "github.com/tanema/gween/ease"

// DefaultEasing is the easing curve used when Options.Easing is empty or
// names an unknown curve.
const DefaultEasing = "easeOutQuad"

// easings maps easing names to gween ease functions. The table is static;
// entries are never added or removed at runtime.
var easings = map[string]ease.TweenFunc{
	"linear":           ease.Linear,
	"easeInQuad":       ease.InQuad,
	"easeOutQuad":      ease.OutQuad,
	"easeInOutQuad":    ease.InOutQuad,
	"easeInCubic":      ease.InCubic,
	"easeOutCubic":     ease.OutCubic,
	"easeInOutCubic":   ease.InOutCubic,
	"easeInQuart":      ease.InQuart,
	"easeOutQuart":     ease.OutQuart,
	"easeInOutQuart":   ease.InOutQuart,
	"easeInQuint":      ease.InQuint,
	"easeOutQuint":     ease.OutQuint,
	"easeInOutQuint":   ease.InOutQuint,
	"easeInSine":       ease.InSine,
	"easeOutSine":      ease.OutSine,
	"easeInOutSine":    ease.InOutSine,
	"easeInExpo":       ease.InExpo,
	"easeOutExpo":      ease.OutExpo,
	"easeInOutExpo":    ease.InOutExpo,
	"easeInCirc":       ease.InCirc,
	"easeOutCirc":      ease.OutCirc,
	"easeInOutCirc":    ease.InOutCirc,
	"easeInBack":       ease.InBack,
	"easeOutBack":      ease.OutBack,
	"easeInOutBack":    ease.InOutBack,
	"easeInBounce":     ease.InBounce,
	"easeOutBounce":    ease.OutBounce,
	"easeInOutBounce":  ease.InOutBounce,
	"easeInElastic":    ease.InElastic,
	"easeOutElastic":   ease.OutElastic,
	"easeInOutElastic": ease.InOutElastic,
}

// ResolveEasing returns the ease function registered under name. An empty or
// unknown name falls back to [DefaultEasing] rather than failing; callers
// that want to detect typos can check [KnownEasing] first.
func ResolveEasing(name string) ease.TweenFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	if globalDebug && name != "" {
		debugf("unknown easing %q, falling back to %s", name, DefaultEasing)
	}
	return easings[DefaultEasing]
}

// KnownEasing reports whether name is registered in the easing table.
func KnownEasing(name string) bool {
	_, ok := easings[name]
	return ok
}

// EasingNames returns the names of all registered easing curves. The order
// is unspecified.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	return names
}
