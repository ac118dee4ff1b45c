package logging

// MethodConfig controls one generated logging method.
type MethodConfig struct {
	// Verbose restricts output to runs where the runtime reports verbose
	// mode. Methods with Verbose false always print (unless quieted).
	Verbose bool `json:"verbose" mapstructure:"verbose"`

	// Prefix, when non-blank, is printed as a bracketed, colorized token
	// ahead of the arguments.
	Prefix string `json:"prefix,omitempty" mapstructure:"prefix"`

	// Color names the palette color applied to string arguments, the
	// prefix, and the timestamp. Blank or unknown names apply no color.
	Color string `json:"color,omitempty" mapstructure:"color"`

	// Stamp prepends a bracketed local timestamp.
	Stamp bool `json:"stamp,omitempty" mapstructure:"stamp"`

	// Throws makes a call return an *EscalationError after printing, so a
	// logging call doubles as an assertion.
	Throws bool `json:"throws,omitempty" mapstructure:"throws"`
}

// Runtime exposes the per-invocation flags a generated method consults at
// call time. Options are parsed after methods are generated, so methods
// hold the interface rather than a snapshot.
type Runtime interface {
	Verbose() bool
	Quiet() bool
	Force() bool
}
