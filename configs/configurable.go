package configs

// Configurable marks types read from config files. ConfigExpr names the value
// in diagnostics.
type Configurable interface {
	ConfigExpr() string
}
