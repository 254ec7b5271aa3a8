package compiler

// Option is a configuration function for a Compiler.
type Option func(*Compiler)

// WithEnv supplies the execution environment the compiled code will run
// against. The map is copied.
func WithEnv(env map[string]any) Option {
	return func(c *Compiler) {
		c.env = make(map[string]any, len(env))
		for k, v := range env {
			c.env[k] = v
		}
	}
}
