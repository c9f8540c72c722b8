package utils

// Ptr returns a pointer to a copy of v. It is the usual way to pass a literal
// folding policy to one of the optional config setters:
//
//	cfg = cfg.WithSelectFolding(utils.Ptr(config.Chop))
func Ptr[T any](v T) *T {
	return &v
}
