package loop

import "fmt"

// A ParseError reports a malformed loop or keep token on the command line.
type ParseError struct {
	Token string
	Err   error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("could not parse '%s': %s", e.Token, e.Err)
}

func (e ParseError) Unwrap() error {
	return e.Err
}

// A ConfigError reports a structurally valid but self-contradictory loop
// configuration: overlapping loops, out-of-range positions, or a loop whose
// kept ends leave nothing to remove.
type ConfigError struct {
	Msg string
}

func (e ConfigError) Error() string {
	return e.Msg
}
