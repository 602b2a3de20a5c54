package remote

import (
	"errors"
	"strings"

	"github.com/kjk/qentry/entry"
)

// Config is for connecting to S3-compatible storage
type Config struct {
	Access   string
	Secret   string
	Bucket   string
	Endpoint string
	Region   string
	// if true, use http and not https
	Insecure bool
}

func (c *Config) validate() error {
	if c == nil {
		return errors.New("must provide config")
	}
	if c.Access == "" || c.Secret == "" || c.Bucket == "" || c.Endpoint == "" {
		return errors.New("must provide all fields in config")
	}
	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// ConfigFromList creates Config from entries:
//
//	access=...
//	secret=...
//	bucket=...
//	endpoint=...
//	region=...
//	insecure=true
//
// If a name repeats, the last value wins
func ConfigFromList(l *entry.List) (*Config, error) {
	get := func(name string) string {
		v, _ := l.GetLast(name)
		return v
	}
	c := &Config{
		Access:   get("access"),
		Secret:   get("secret"),
		Bucket:   get("bucket"),
		Endpoint: get("endpoint"),
		Region:   get("region"),
		Insecure: parseBool(get("insecure")),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}
