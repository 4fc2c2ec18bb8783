// Package config loads typed configuration from the process environment.
//
// Structs describe their variables with caarlos0/env tags; optional .env files
// are merged into the environment with godotenv first:
//
//	type Config struct {
//	    Addr        string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    SearchDelay time.Duration `env:"SEARCH_DELAY" envDefault:"300ms"`
//	}
//
//	if err := config.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Each struct type is parsed once and cached for the life of the process;
// ResetCache clears the cache between tests.
//
// Errors wrap ErrParsingConfig or ErrNilPointer and can be matched with errors.Is.
package config
