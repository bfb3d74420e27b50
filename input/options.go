package input

type Options struct {
	// Body is the raw request body. A leading "@" reads it from a file,
	// "@-" reads it from stdin.
	Body      string
	ReadStdin bool
	AuthType  AuthType
	Auth      string
}
